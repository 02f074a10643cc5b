package runtime

import (
	"math"
	"strconv"
	"strings"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/store"
)

// TelemetrySchemaVersion tags normalized telemetry documents.
const TelemetrySchemaVersion = "opencane.telemetry.v1"

// NormalizeTelemetry folds a heterogeneous device telemetry payload into the
// stable internal schema: battery, network, location, motion, imu, and
// system sections keyed by canonical names. Alias keys and dotted paths are
// resolved; sections with no recognized fields are omitted. Returns an empty
// map when nothing was recognized.
func NormalizeTelemetry(payload map[string]any, tsMS int64) map[string]any {
	if tsMS <= 0 {
		tsMS = protocol.NowMS()
	}
	out := map[string]any{
		"schema_version": TelemetrySchemaVersion,
		"ts_ms":          tsMS,
	}
	if payload == nil {
		return map[string]any{}
	}

	if battery := extractBattery(payload); len(battery) > 0 {
		out["battery"] = battery
	}
	if network := extractNetwork(payload); len(network) > 0 {
		out["network"] = network
	}
	if location := extractLocation(payload); len(location) > 0 {
		out["location"] = location
	}
	if motion := extractMotion(payload); len(motion) > 0 {
		out["motion"] = motion
	}
	if imu := extractIMU(payload); len(imu) > 0 {
		out["imu"] = imu
	}
	if system := extractSystem(payload); len(system) > 0 {
		out["system"] = system
	}

	if len(out) <= 2 {
		return map[string]any{}
	}
	return out
}

// TelemetrySample shapes a normalized document into a durable telemetry row.
func TelemetrySample(deviceID, sessionID string, structured, raw map[string]any) store.Sample {
	sample := store.Sample{
		DeviceID:      deviceID,
		SessionID:     sessionID,
		SchemaVersion: TelemetrySchemaVersion,
		Raw:           raw,
	}
	if ts, ok := structured["ts_ms"].(int64); ok {
		sample.TSMS = ts
	}
	if sample.TSMS <= 0 {
		sample.TSMS = protocol.NowMS()
	}
	if battery, ok := structured["battery"].(map[string]any); ok {
		sample.Battery = battery
	}
	if network, ok := structured["network"].(map[string]any); ok {
		sample.Network = network
	}
	if location, ok := structured["location"].(map[string]any); ok {
		sample.Location = location
	}
	if imu, ok := structured["imu"].(map[string]any); ok {
		sample.IMU = imu
	}
	if system, ok := structured["system"].(map[string]any); ok {
		if temp, ok := system["temperature_c"].(float64); ok {
			sample.TemperatureC = &temp
		}
	}
	return sample
}

func extractBattery(data map[string]any) map[string]any {
	out := map[string]any{}
	if percent, ok := firstFloat(data, "battery_percent", "battery", "bat", "soc"); ok {
		out["percent"] = clampFloat(roundN(percent, 2), 0, 100)
	}
	if voltage, ok := firstInt(data, "battery_voltage_mv", "vbat_mv"); ok && voltage > 0 {
		out["voltage_mv"] = voltage
	}
	if charging, ok := firstBool(data, "charging", "is_charging", "charge"); ok {
		out["charging"] = charging
	}
	return out
}

func extractNetwork(data map[string]any) map[string]any {
	out := map[string]any{}
	if rssi, ok := firstFloat(data, "rssi", "rssi_dbm"); ok {
		out["rssi_dbm"] = roundN(rssi, 2)
	}
	if rsrp, ok := firstFloat(data, "rsrp", "rsrp_dbm"); ok {
		out["rsrp_dbm"] = roundN(rsrp, 2)
	}
	if rsrq, ok := firstFloat(data, "rsrq", "rsrq_db"); ok {
		out["rsrq_db"] = roundN(rsrq, 2)
	}
	if snr, ok := firstFloat(data, "snr", "snr_db"); ok {
		out["snr_db"] = roundN(snr, 2)
	}
	if level, ok := firstInt(data, "signal_level"); ok {
		out["signal_level"] = level
	}
	if netType := firstText(data, "network_type", "net_type", "rat"); netType != "" {
		out["network_type"] = netType
	}
	return out
}

func extractLocation(data map[string]any) map[string]any {
	out := map[string]any{}
	lat, latOK := firstFloat(data, "lat", "latitude")
	lon, lonOK := firstFloat(data, "lon", "lng", "longitude")
	if latOK && lonOK {
		out["lat"] = roundN(lat, 7)
		out["lon"] = roundN(lon, 7)
	}
	if accuracy, ok := firstFloat(data, "accuracy_m", "gps_accuracy", "location_accuracy"); ok && accuracy >= 0 {
		out["accuracy_m"] = roundN(accuracy, 2)
	}
	if altitude, ok := firstFloat(data, "altitude_m", "altitude"); ok {
		out["altitude_m"] = roundN(altitude, 2)
	}
	return out
}

func extractMotion(data map[string]any) map[string]any {
	out := map[string]any{}
	if heading, ok := firstFloat(data, "heading_deg", "heading", "yaw"); ok {
		out["heading_deg"] = roundN(math.Mod(math.Mod(heading, 360)+360, 360), 2)
	}
	if speed, ok := firstFloat(data, "speed_mps", "speed"); ok && speed >= 0 {
		out["speed_mps"] = roundN(speed, 2)
	}
	if moving, ok := firstBool(data, "moving", "is_moving"); ok {
		out["moving"] = moving
	}
	if steps, ok := firstInt(data, "step_count", "steps"); ok && steps >= 0 {
		out["step_count"] = steps
	}
	return out
}

func extractIMU(data map[string]any) map[string]any {
	out := map[string]any{}
	if accel := extractTriplet(data, "accel", "acc", "accelerometer"); accel != nil {
		out["accelerometer_mps2"] = accel
	}
	if gyro := extractTriplet(data, "gyro", "gyroscope"); gyro != nil {
		out["gyroscope_dps"] = gyro
	}
	if mag := extractTriplet(data, "mag", "magnetometer"); mag != nil {
		out["magnetometer_ut"] = mag
	}
	return out
}

func extractSystem(data map[string]any) map[string]any {
	out := map[string]any{}
	if temp, ok := firstFloat(data, "temperature_c", "temp_c", "cpu_temp"); ok {
		out["temperature_c"] = roundN(temp, 2)
	}
	if cpu, ok := firstFloat(data, "cpu_percent", "cpu_usage"); ok {
		out["cpu_percent"] = clampFloat(roundN(cpu, 2), 0, 100)
	}
	if memory, ok := firstFloat(data, "memory_percent", "mem_percent", "memory_usage"); ok {
		out["memory_percent"] = clampFloat(roundN(memory, 2), 0, 100)
	}
	return out
}

// extractTriplet resolves a 3-axis sensor block from {prefix}_x style keys,
// a nested {prefix: {x,y,z}} map, or the same nested under imu/sensors.
func extractTriplet(data map[string]any, prefixes ...string) map[string]any {
	var axes map[string]any
	for _, prefix := range prefixes {
		if block, ok := data[prefix].(map[string]any); ok {
			axes = block
			break
		}
	}
	if axes == nil {
		for _, wrapper := range []string{"imu", "sensors"} {
			block, ok := data[wrapper].(map[string]any)
			if !ok {
				continue
			}
			for _, prefix := range prefixes {
				if nested, ok := block[prefix].(map[string]any); ok {
					axes = nested
					break
				}
			}
			if axes != nil {
				break
			}
		}
	}

	axisKeys := func(axis string) []string {
		keys := make([]string, 0, len(prefixes))
		for _, prefix := range prefixes {
			keys = append(keys, prefix+"_"+axis)
		}
		return keys
	}
	x, xOK := firstFloat(data, axisKeys("x")...)
	y, yOK := firstFloat(data, axisKeys("y")...)
	z, zOK := firstFloat(data, axisKeys("z")...)
	if axes != nil {
		if !xOK {
			x, xOK = toFloat(axes["x"])
		}
		if !yOK {
			y, yOK = toFloat(axes["y"])
		}
		if !zOK {
			z, zOK = toFloat(axes["z"])
		}
	}
	if !xOK && !yOK && !zOK {
		return nil
	}
	return map[string]any{
		"x": roundN(x, 4),
		"y": roundN(y, 4),
		"z": roundN(z, 4),
	}
}

func firstFloat(data map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := toFloat(deepGet(data, key)); ok {
			return v, true
		}
	}
	return 0, false
}

func firstInt(data map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		if v, ok := toInt(deepGet(data, key)); ok {
			return v, true
		}
	}
	return 0, false
}

func firstBool(data map[string]any, keys ...string) (bool, bool) {
	for _, key := range keys {
		if hint := boolHint(deepGet(data, key)); hint != nil {
			return *hint, true
		}
	}
	return false, false
}

func firstText(data map[string]any, keys ...string) string {
	for _, key := range keys {
		if text := strings.TrimSpace(toString(deepGet(data, key))); text != "" {
			return text
		}
	}
	return ""
}

// deepGet resolves a flat key first, then walks dotted paths.
func deepGet(data map[string]any, key string) any {
	if v, ok := data[key]; ok {
		return v
	}
	if !strings.Contains(key, ".") {
		return nil
	}
	var cur any = data
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func roundN(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
