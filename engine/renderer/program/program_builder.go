package program

type reflectOptions struct {
	uniqueSamplerUnits bool
}

// ReflectBuilderOption is a functional option for Reflect.
type ReflectBuilderOption func(*reflectOptions)

// WithUniqueSamplerUnits gives every non-array sampler its own texture unit instead of one shared unit.
//
// Returns:
//   - ReflectBuilderOption: the option
func WithUniqueSamplerUnits() ReflectBuilderOption {
	return func(o *reflectOptions) {
		o.uniqueSamplerUnits = true
	}
}
