// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeviceBindingsColumns holds the columns for the "device_bindings" table.
	DeviceBindingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "device_id", Type: field.TypeString, Unique: true},
		{Name: "device_token_hash", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"registered", "bound", "activated", "revoked"}, Default: "registered"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "binding_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "activated_at_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "revoked_at_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "revoke_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "updated_at_ms", Type: field.TypeInt64},
	}
	// DeviceBindingsTable holds the schema information for the "device_bindings" table.
	DeviceBindingsTable = &schema.Table{
		Name:       "device_bindings",
		Columns:    DeviceBindingsColumns,
		PrimaryKey: []*schema.Column{DeviceBindingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "devicebinding_user_id",
				Unique:  false,
				Columns: []*schema.Column{DeviceBindingsColumns[4]},
			},
			{
				Name:    "devicebinding_status",
				Unique:  false,
				Columns: []*schema.Column{DeviceBindingsColumns[3]},
			},
		},
	}
	// DeviceOperationsColumns holds the columns for the "device_operations" table.
	DeviceOperationsColumns = []*schema.Column{
		{Name: "operation_id", Type: field.TypeString, Unique: true},
		{Name: "device_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "op_type", Type: field.TypeString},
		{Name: "command_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "sent", "acked", "failed", "canceled"}, Default: "queued"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "sent_at_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "acked_at_ms", Type: field.TypeInt64, Nullable: true},
	}
	// DeviceOperationsTable holds the schema information for the "device_operations" table.
	DeviceOperationsTable = &schema.Table{
		Name:       "device_operations",
		Columns:    DeviceOperationsColumns,
		PrimaryKey: []*schema.Column{DeviceOperationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deviceoperation_device_id_created_at_ms",
				Unique:  false,
				Columns: []*schema.Column{DeviceOperationsColumns[1], DeviceOperationsColumns[9]},
			},
			{
				Name:    "deviceoperation_status",
				Unique:  false,
				Columns: []*schema.Column{DeviceOperationsColumns[5]},
			},
		},
	}
	// DeviceSessionsColumns holds the columns for the "device_sessions" table.
	DeviceSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "device_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"connecting", "ready", "listening", "thinking", "speaking", "closed"}, Default: "connecting"},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "last_seen_ms", Type: field.TypeInt64},
		{Name: "last_inbound_seq", Type: field.TypeInt64, Default: -1},
		{Name: "last_outbound_seq", Type: field.TypeInt64, Default: 0},
		{Name: "closed_at_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "close_reason", Type: field.TypeString, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "telemetry", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at_ms", Type: field.TypeInt64},
	}
	// DeviceSessionsTable holds the schema information for the "device_sessions" table.
	DeviceSessionsTable = &schema.Table{
		Name:       "device_sessions",
		Columns:    DeviceSessionsColumns,
		PrimaryKey: []*schema.Column{DeviceSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "devicesession_device_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{DeviceSessionsColumns[1], DeviceSessionsColumns[2]},
			},
			{
				Name:    "devicesession_device_id_last_seen_ms",
				Unique:  false,
				Columns: []*schema.Column{DeviceSessionsColumns[1], DeviceSessionsColumns[5]},
			},
			{
				Name:    "devicesession_state",
				Unique:  false,
				Columns: []*schema.Column{DeviceSessionsColumns[3]},
			},
		},
	}
	// DigitalTasksColumns holds the columns for the "digital_tasks" table.
	DigitalTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString, Nullable: true},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failed", "timeout", "canceled"}, Default: "pending"},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 120},
		{Name: "push_context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "updated_at_ms", Type: field.TypeInt64},
		{Name: "completed_at_ms", Type: field.TypeInt64, Nullable: true},
	}
	// DigitalTasksTable holds the schema information for the "digital_tasks" table.
	DigitalTasksTable = &schema.Table{
		Name:       "digital_tasks",
		Columns:    DigitalTasksColumns,
		PrimaryKey: []*schema.Column{DigitalTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "digitaltask_device_id_created_at_ms",
				Unique:  false,
				Columns: []*schema.Column{DigitalTasksColumns[2], DigitalTasksColumns[10]},
			},
			{
				Name:    "digitaltask_session_id",
				Unique:  false,
				Columns: []*schema.Column{DigitalTasksColumns[1]},
			},
			{
				Name:    "digitaltask_status",
				Unique:  false,
				Columns: []*schema.Column{DigitalTasksColumns[4]},
			},
		},
	}
	// LifelogContextsColumns holds the columns for the "lifelog_contexts" table.
	LifelogContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "image_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "semantic_title", Type: field.TypeString, Nullable: true},
		{Name: "semantic_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "objects", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_hints", Type: field.TypeJSON, Nullable: true},
		{Name: "actionable_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risk_level", Type: field.TypeString, Default: "P3"},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "created_at_ms", Type: field.TypeInt64},
	}
	// LifelogContextsTable holds the schema information for the "lifelog_contexts" table.
	LifelogContextsTable = &schema.Table{
		Name:       "lifelog_contexts",
		Columns:    LifelogContextsColumns,
		PrimaryKey: []*schema.Column{LifelogContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lifelogcontext_image_id",
				Unique:  false,
				Columns: []*schema.Column{LifelogContextsColumns[1]},
			},
			{
				Name:    "lifelogcontext_session_id_created_at_ms",
				Unique:  false,
				Columns: []*schema.Column{LifelogContextsColumns[2], LifelogContextsColumns[12]},
			},
			{
				Name:    "lifelogcontext_risk_level",
				Unique:  false,
				Columns: []*schema.Column{LifelogContextsColumns[9]},
			},
		},
	}
	// LifelogEventsColumns holds the columns for the "lifelog_events" table.
	LifelogEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risk_level", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "created_at_ms", Type: field.TypeInt64},
	}
	// LifelogEventsTable holds the schema information for the "lifelog_events" table.
	LifelogEventsTable = &schema.Table{
		Name:       "lifelog_events",
		Columns:    LifelogEventsColumns,
		PrimaryKey: []*schema.Column{LifelogEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lifelogevent_session_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{LifelogEventsColumns[1], LifelogEventsColumns[8]},
			},
			{
				Name:    "lifelogevent_device_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{LifelogEventsColumns[2], LifelogEventsColumns[8]},
			},
			{
				Name:    "lifelogevent_event_type_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{LifelogEventsColumns[3], LifelogEventsColumns[8]},
			},
			{
				Name:    "lifelogevent_risk_level",
				Unique:  false,
				Columns: []*schema.Column{LifelogEventsColumns[6]},
			},
		},
	}
	// LifelogImagesColumns holds the columns for the "lifelog_images" table.
	LifelogImagesColumns = []*schema.Column{
		{Name: "image_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString, Nullable: true},
		{Name: "image_uri", Type: field.TypeString},
		{Name: "dhash", Type: field.TypeString},
		{Name: "is_dedup", Type: field.TypeBool, Default: false},
		{Name: "content_type", Type: field.TypeString, Default: "image/jpeg"},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "created_at_ms", Type: field.TypeInt64},
	}
	// LifelogImagesTable holds the schema information for the "lifelog_images" table.
	LifelogImagesTable = &schema.Table{
		Name:       "lifelog_images",
		Columns:    LifelogImagesColumns,
		PrimaryKey: []*schema.Column{LifelogImagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lifelogimage_session_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{LifelogImagesColumns[1], LifelogImagesColumns[8]},
			},
			{
				Name:    "lifelogimage_session_id_dhash",
				Unique:  false,
				Columns: []*schema.Column{LifelogImagesColumns[1], LifelogImagesColumns[4]},
			},
		},
	}
	// ObservabilitySamplesColumns holds the columns for the "observability_samples" table.
	ObservabilitySamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope", Type: field.TypeString},
		{Name: "counters", Type: field.TypeJSON},
		{Name: "ts_ms", Type: field.TypeInt64},
	}
	// ObservabilitySamplesTable holds the schema information for the "observability_samples" table.
	ObservabilitySamplesTable = &schema.Table{
		Name:       "observability_samples",
		Columns:    ObservabilitySamplesColumns,
		PrimaryKey: []*schema.Column{ObservabilitySamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "observabilitysample_scope_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{ObservabilitySamplesColumns[1], ObservabilitySamplesColumns[3]},
			},
		},
	}
	// PushUpdatesColumns holds the columns for the "push_updates" table.
	PushUpdatesColumns = []*schema.Column{
		{Name: "update_id", Type: field.TypeString, Unique: true},
		{Name: "device_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "send_key", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent"}, Default: "pending"},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "sent_at_ms", Type: field.TypeInt64, Nullable: true},
	}
	// PushUpdatesTable holds the schema information for the "push_updates" table.
	PushUpdatesTable = &schema.Table{
		Name:       "push_updates",
		Columns:    PushUpdatesColumns,
		PrimaryKey: []*schema.Column{PushUpdatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushupdate_device_id_status_created_at_ms",
				Unique:  false,
				Columns: []*schema.Column{PushUpdatesColumns[1], PushUpdatesColumns[6], PushUpdatesColumns[7]},
			},
		},
	}
	// TelemetrySamplesColumns holds the columns for the "telemetry_samples" table.
	TelemetrySamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "device_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "schema_version", Type: field.TypeString, Default: "opencane.telemetry.v1"},
		{Name: "battery", Type: field.TypeJSON, Nullable: true},
		{Name: "network", Type: field.TypeJSON, Nullable: true},
		{Name: "location", Type: field.TypeJSON, Nullable: true},
		{Name: "imu", Type: field.TypeJSON, Nullable: true},
		{Name: "temperature_c", Type: field.TypeFloat64, Nullable: true},
		{Name: "raw", Type: field.TypeJSON, Nullable: true},
		{Name: "ts_ms", Type: field.TypeInt64},
		{Name: "created_at_ms", Type: field.TypeInt64},
	}
	// TelemetrySamplesTable holds the schema information for the "telemetry_samples" table.
	TelemetrySamplesTable = &schema.Table{
		Name:       "telemetry_samples",
		Columns:    TelemetrySamplesColumns,
		PrimaryKey: []*schema.Column{TelemetrySamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetrysample_device_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{TelemetrySamplesColumns[1], TelemetrySamplesColumns[10]},
			},
			{
				Name:    "telemetrysample_session_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{TelemetrySamplesColumns[2], TelemetrySamplesColumns[10]},
			},
		},
	}
	// ThoughtTracesColumns holds the columns for the "thought_traces" table.
	ThoughtTracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "ts_ms", Type: field.TypeInt64},
	}
	// ThoughtTracesTable holds the schema information for the "thought_traces" table.
	ThoughtTracesTable = &schema.Table{
		Name:       "thought_traces",
		Columns:    ThoughtTracesColumns,
		PrimaryKey: []*schema.Column{ThoughtTracesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thoughttrace_trace_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{ThoughtTracesColumns[1], ThoughtTracesColumns[6]},
			},
			{
				Name:    "thoughttrace_session_id_ts_ms",
				Unique:  false,
				Columns: []*schema.Column{ThoughtTracesColumns[2], ThoughtTracesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeviceBindingsTable,
		DeviceOperationsTable,
		DeviceSessionsTable,
		DigitalTasksTable,
		LifelogContextsTable,
		LifelogEventsTable,
		LifelogImagesTable,
		ObservabilitySamplesTable,
		PushUpdatesTable,
		TelemetrySamplesTable,
		ThoughtTracesTable,
	}
)

func init() {
}
