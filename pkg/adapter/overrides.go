package adapter

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ProfileOverrides carries per-deployment adjustments layered onto a built-in
// profile. Firmware forks rename a field or change the packet magic without
// warranting a whole new profile; operators express that in the hardware
// config's profile_overrides map.
type ProfileOverrides struct {
	PacketMagic *int   `yaml:"packet_magic"`
	AudioUpMode string `yaml:"audio_up_mode"`

	EventTypeAliases    map[string]string   `yaml:"event_type_aliases"`
	CommandTypeAliases  map[string]string   `yaml:"command_type_aliases"`
	ControlFieldAliases map[string][]string `yaml:"control_field_aliases"`
	PayloadAliases      map[string]string   `yaml:"payload_aliases"`

	JSONAudioB64Keys      []string `yaml:"json_audio_b64_keys"`
	JSONAudioEncodingKeys []string `yaml:"json_audio_encoding_keys"`
	JSONAudioSeqKeys      []string `yaml:"json_audio_seq_keys"`
	JSONAudioTSKeys       []string `yaml:"json_audio_ts_keys"`

	DownlinkTypeKey    string `yaml:"downlink_type_key"`
	DownlinkPayloadKey string `yaml:"downlink_payload_key"`

	ReplayWindow int    `yaml:"replay_window"`
	MaxClockSkew string `yaml:"max_clock_skew"`
}

// ParseOverrides decodes the free-form override map from configuration into a
// typed override set. Returns nil when the map is empty.
func ParseOverrides(raw map[string]any) (*ProfileOverrides, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	buf, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode profile overrides: %w", err)
	}
	var o ProfileOverrides
	if err := yaml.Unmarshal(buf, &o); err != nil {
		return nil, fmt.Errorf("decode profile overrides: %w", err)
	}
	return &o, nil
}

// WithOverrides returns a copy of the profile with o layered on top. Alias
// tables deep-merge (override entries win, base entries stay), key-probe
// lists replace wholesale when present, scalars replace when set.
func (p Profile) WithOverrides(o *ProfileOverrides) (Profile, error) {
	if o == nil {
		return p, nil
	}
	out := p

	if o.PacketMagic != nil {
		if *o.PacketMagic < 0 || *o.PacketMagic > 0xFF {
			return Profile{}, fmt.Errorf("profile override packet_magic %#x out of byte range", *o.PacketMagic)
		}
		out.PacketMagic = byte(*o.PacketMagic)
	}
	if o.AudioUpMode != "" {
		switch o.AudioUpMode {
		case AudioUpFramedPacket, AudioUpJSONB64:
			out.AudioUpMode = o.AudioUpMode
		default:
			return Profile{}, fmt.Errorf("profile override audio_up_mode %q is not a known mode", o.AudioUpMode)
		}
	}

	var err error
	if out.EventTypeAliases, err = mergeAliases(p.EventTypeAliases, o.EventTypeAliases); err != nil {
		return Profile{}, fmt.Errorf("merge event_type_aliases: %w", err)
	}
	if out.CommandTypeAliases, err = mergeAliases(p.CommandTypeAliases, o.CommandTypeAliases); err != nil {
		return Profile{}, fmt.Errorf("merge command_type_aliases: %w", err)
	}
	if out.PayloadAliases, err = mergeAliases(p.PayloadAliases, o.PayloadAliases); err != nil {
		return Profile{}, fmt.Errorf("merge payload_aliases: %w", err)
	}
	if len(o.ControlFieldAliases) > 0 {
		merged := make(map[string][]string, len(p.ControlFieldAliases))
		for field, names := range p.ControlFieldAliases {
			merged[field] = append([]string(nil), names...)
		}
		if err := mergo.Merge(&merged, o.ControlFieldAliases, mergo.WithOverride); err != nil {
			return Profile{}, fmt.Errorf("merge control_field_aliases: %w", err)
		}
		out.ControlFieldAliases = merged
	}

	if len(o.JSONAudioB64Keys) > 0 {
		out.JSONAudioB64Keys = append([]string(nil), o.JSONAudioB64Keys...)
	}
	if len(o.JSONAudioEncodingKeys) > 0 {
		out.JSONAudioEncodingKeys = append([]string(nil), o.JSONAudioEncodingKeys...)
	}
	if len(o.JSONAudioSeqKeys) > 0 {
		out.JSONAudioSeqKeys = append([]string(nil), o.JSONAudioSeqKeys...)
	}
	if len(o.JSONAudioTSKeys) > 0 {
		out.JSONAudioTSKeys = append([]string(nil), o.JSONAudioTSKeys...)
	}
	if o.DownlinkTypeKey != "" {
		out.DownlinkTypeKey = o.DownlinkTypeKey
	}
	if o.DownlinkPayloadKey != "" {
		out.DownlinkPayloadKey = o.DownlinkPayloadKey
	}
	if o.ReplayWindow > 0 {
		out.ReplayWindow = o.ReplayWindow
	}
	if o.MaxClockSkew != "" {
		skew, err := time.ParseDuration(o.MaxClockSkew)
		if err != nil {
			return Profile{}, fmt.Errorf("parse max_clock_skew: %w", err)
		}
		if skew < 0 {
			return Profile{}, fmt.Errorf("profile override max_clock_skew must not be negative")
		}
		// "0s" is explicit and disables the clock skew check.
		out.MaxClockSkew = skew
	}
	return out, nil
}

// mergeAliases folds override entries into a copy of base. The base map is
// never mutated so built-in profiles stay pristine.
func mergeAliases(base, override map[string]string) (map[string]string, error) {
	if len(override) == 0 {
		return base, nil
	}
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
		return nil, err
	}
	return merged, nil
}
