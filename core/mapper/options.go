// Package mapper implements the Msg<->Dtp semantic mapping (spec.md §4.D,
// §4.E): name mangling, helper-var/element-counter synthesis, and the
// ROS2_* attribute annotations that round-trip information one format can
// express and the other cannot.
package mapper

// Options configures the mapping, covering spec.md §9's open question
// about how many padding slots a Dynamic array gets in the DTP
// representation (there being no way to express "unbounded" in DTP's
// fixed-capacity arrays).
type Options struct {
	// DynamicArrayCapacity is the number of element slots synthesized for
	// a Msg Dynamic array's DTP Capacity. Defaults to 3.
	DynamicArrayCapacity uint64
}

// DefaultOptions returns the mapper's default configuration.
func DefaultOptions() Options {
	return Options{DynamicArrayCapacity: 3}
}

func (o Options) dynamicCapacity() uint64 {
	if o.DynamicArrayCapacity == 0 {
		return 3
	}
	return o.DynamicArrayCapacity
}
