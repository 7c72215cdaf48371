package params

const (
	// DefaultExponent is the field exponent used when a caller does not
	// request a specific field order. The resulting field is ℤ_{2³²}.
	DefaultExponent = 32

	// DefaultQuantity is the number of shares produced when a caller does
	// not request a specific quantity.
	DefaultQuantity = 2
)
