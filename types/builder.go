package types

// Fundamental scalar descriptors shared by layout producers and tests.
var (
	Int8T    = &Type{Kind: Int, Name: "int8", Size: 1}
	Int16T   = &Type{Kind: Int, Name: "int16", Size: 2}
	Int32T   = &Type{Kind: Int, Name: "int32", Size: 4}
	Int64T   = &Type{Kind: Int, Name: "int64", Size: 8}
	Uint8T   = &Type{Kind: Uint, Name: "uint8", Size: 1}
	Uint16T  = &Type{Kind: Uint, Name: "uint16", Size: 2}
	Uint32T  = &Type{Kind: Uint, Name: "uint32", Size: 4}
	Uint64T  = &Type{Kind: Uint, Name: "uint64", Size: 8}
	Float32T = &Type{Kind: Float, Name: "float32", Size: 4}
	Float64T = &Type{Kind: Float, Name: "float64", Size: 8}
	CharT    = &Type{Kind: Char, Name: "char", Size: 1}
	BoolT    = &Type{Kind: Bool, Name: "bool", Size: 1}
)

// Scalar returns the named fundamental descriptor, or nil.
func Scalar(name string) *Type {
	switch name {
	case "int8":
		return Int8T
	case "int16":
		return Int16T
	case "int32", "int":
		return Int32T
	case "int64":
		return Int64T
	case "uint8":
		return Uint8T
	case "uint16":
		return Uint16T
	case "uint32":
		return Uint32T
	case "uint64":
		return Uint64T
	case "float32", "float":
		return Float32T
	case "float64", "double":
		return Float64T
	case "char":
		return CharT
	case "bool":
		return BoolT
	}
	return nil
}

// PointerTo returns a pointer descriptor with the target word size.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: Pointer, Size: WordSize, Elem: elem}
}

// RefTo returns a reference descriptor with the target word size.
func RefTo(elem *Type) *Type {
	return &Type{Kind: Ref, Size: WordSize, Elem: elem}
}

// ArrayOf returns a fixed-size array descriptor of count elements.
func ArrayOf(elem *Type, count uint64) *Type {
	return &Type{Kind: Array, Size: elem.Size * count, Elem: elem}
}

// TypedefOf returns a typedef alias descriptor.
func TypedefOf(name string, underlying *Type) *Type {
	return &Type{Kind: Typedef, Name: name, Size: underlying.Size, Elem: underlying}
}

// QualifiedOf returns a qualifier layer (const, volatile) over a type.
func QualifiedOf(underlying *Type) *Type {
	return &Type{Kind: Qualified, Name: underlying.Name, Size: underlying.Size, Elem: underlying}
}

// NewRecord returns a record descriptor with the supplied tag, total size,
// template arguments and members. Members are listed base subobjects first.
func NewRecord(tag string, size uint64, fields []Field, args ...*Type) *Type {
	return &Type{Kind: Record, Name: tag, Size: size, Fields: fields, Args: args}
}
