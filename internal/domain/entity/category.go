package entity

// DefaultCategory is used when a request does not name a category.
const DefaultCategory = "general"

var categories = [...]string{
	"general",
	"business",
	"technology",
	"science",
	"health",
	"entertainment",
	"sports",
}

// Categories returns the fixed, ordered list of news categories.
// A fresh slice is returned on every call so callers cannot mutate the list.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories[:])
	return out
}
