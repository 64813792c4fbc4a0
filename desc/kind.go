package desc

// Kind represents a conversion category of a type, ignoring its element types
type Kind int

const (
	//Invalid kind is not served by any converter (chan, func, complex, unsafe pointer)
	Invalid Kind = iota
	Boolean
	Character
	Byte
	Short
	Integer
	Long
	Float
	Double
	BigInteger
	BigDecimal
	String
	Temporal
	Enum
	Array
	Collection
	Map
	Bean
	//Unknown kind passes values through unchanged
	Unknown
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	Boolean:    "Boolean",
	Character:  "Character",
	Byte:       "Byte",
	Short:      "Short",
	Integer:    "Integer",
	Long:       "Long",
	Float:      "Float",
	Double:     "Double",
	BigInteger: "BigInteger",
	BigDecimal: "BigDecimal",
	String:     "String",
	Temporal:   "Temporal",
	Enum:       "Enum",
	Array:      "Array",
	Collection: "Collection",
	Map:        "Map",
	Bean:       "Bean",
	Unknown:    "Unknown",
}

// Kinds returns all kinds served by converters
func Kinds() []Kind {
	ret := make([]Kind, 0, len(kindNames)-1)
	for k := Boolean; k <= Unknown; k++ {
		ret = append(ret, k)
	}
	return ret
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// IsNumeric returns true for fixed width and arbitrary precision numbers
func (k Kind) IsNumeric() bool {
	return k >= Byte && k <= BigDecimal
}

// IsPrimitive returns true for kinds backed by Go value types without nil representation
func (k Kind) IsPrimitive() bool {
	return k >= Boolean && k <= Double
}

// IsScalar returns true for non container, non structural kinds
func (k Kind) IsScalar() bool {
	return k >= Boolean && k <= Temporal
}

// IsContainer returns true for kinds holding element types
func (k Kind) IsContainer() bool {
	return k == Array || k == Collection || k == Map
}

// Shape distinguishes container variants sharing a kind
type Shape int

const (
	ShapeNone Shape = iota
	//ShapeList ordered slice
	ShapeList
	//ShapeSet map[K]struct{}
	ShapeSet
	//ShapeBinary []byte
	ShapeBinary
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeSet:
		return "set"
	case ShapeBinary:
		return "binary"
	}
	return ""
}
