package store

// FilterOp is the comparison applied to one metadata key
type FilterOp string

const (
	FilterOpEq FilterOp = "eq"
	FilterOpIn FilterOp = "in"
)

// Filter constrains a query to documents whose metadata matches.
// Eq compares against Value, In matches any of Values.
type Filter struct {
	Key    string
	Op     FilterOp
	Value  string
	Values []string
}

func Eq(key, value string) Filter {
	return Filter{Key: key, Op: FilterOpEq, Value: value}
}

func In(key string, values ...string) Filter {
	return Filter{Key: key, Op: FilterOpIn, Values: values}
}
