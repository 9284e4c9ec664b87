package types

// Commonly used types.
var (
	I8   Type = IntegerType{Width: 8}
	I16  Type = IntegerType{Width: 16}
	I32  Type = IntegerType{Width: 32}
	I64  Type = IntegerType{Width: 64}
	Bool Type = BoolType{}
	Void Type = VoidType{}
)

// builtinTypes is the table of all type names known to the compiler.
var builtinTypes = map[string]Type{
	"i8":   I8,
	"i16":  I16,
	"i32":  I32,
	"i64":  I64,
	"bool": Bool,
	"void": Void,
}

// LookupBuiltin looks up a built-in type by name.
func LookupBuiltin(name string) (Type, bool) {
	typ, ok := builtinTypes[name]
	return typ, ok
}
