// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeviceBinding is the predicate function for devicebinding builders.
type DeviceBinding func(*sql.Selector)

// DeviceOperation is the predicate function for deviceoperation builders.
type DeviceOperation func(*sql.Selector)

// DeviceSession is the predicate function for devicesession builders.
type DeviceSession func(*sql.Selector)

// DigitalTask is the predicate function for digitaltask builders.
type DigitalTask func(*sql.Selector)

// LifelogContext is the predicate function for lifelogcontext builders.
type LifelogContext func(*sql.Selector)

// LifelogEvent is the predicate function for lifelogevent builders.
type LifelogEvent func(*sql.Selector)

// LifelogImage is the predicate function for lifelogimage builders.
type LifelogImage func(*sql.Selector)

// ObservabilitySample is the predicate function for observabilitysample builders.
type ObservabilitySample func(*sql.Selector)

// PushUpdate is the predicate function for pushupdate builders.
type PushUpdate func(*sql.Selector)

// TelemetrySample is the predicate function for telemetrysample builders.
type TelemetrySample func(*sql.Selector)

// ThoughtTrace is the predicate function for thoughttrace builders.
type ThoughtTrace func(*sql.Selector)
