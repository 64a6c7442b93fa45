package service

// Categories is the closed set of transaction category labels.
var Categories = []string{
	"Food",
	"Petrol",
	"Rent",
	"Healthcare",
	"Entertainment",
	"Clothing",
	"Insurance",
	"Communication",
	"Loans",
	"Toll",
	"Transportation",
	"Miscellaneous",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

// ValidCategory reports whether name belongs to the closed category set.
func ValidCategory(name string) bool {
	_, ok := categorySet[name]
	return ok
}
