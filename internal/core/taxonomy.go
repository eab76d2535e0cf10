package core

// departmentCategories maps each department to its legal categories.
// Order matters: the first entry is the entry form's default when the
// department changes. The table constrains entry only; stored records
// are never re-validated against it.
var departmentCategories = map[Department][]Category{
	DepartmentBakery: {
		CategoryIngredients, CategoryEquipment, CategorySupplies,
		CategoryLabor, CategoryMaintenance, CategoryCleaning, CategoryOther,
	},
	DepartmentBar: {
		CategoryBeverages, CategoryEquipment, CategorySupplies,
		CategoryLabor, CategoryMaintenance, CategoryCleaning, CategoryOther,
	},
	DepartmentKitchen: {
		CategoryIngredients, CategoryEquipment, CategorySupplies,
		CategoryLabor, CategoryMaintenance, CategoryCleaning, CategoryOther,
	},
	DepartmentMaintenance: {
		CategoryEquipment, CategorySupplies, CategoryUtilities,
		CategoryMaintenance, CategoryCleaning, CategoryOther,
	},
	DepartmentFrontOfHouse: {
		CategorySupplies, CategoryEquipment, CategoryLabor,
		CategoryCleaning, CategoryOther,
	},
	DepartmentAdministration: {
		CategoryMarketing, CategoryUtilities, CategorySupplies, CategoryOther,
	},
}

// CategoriesFor returns the ordered legal categories for a department.
func CategoriesFor(d Department) []Category {
	cats := departmentCategories[d]
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}

// DefaultCategory returns the category preselected for a department.
func DefaultCategory(d Department) Category {
	if cats := departmentCategories[d]; len(cats) > 0 {
		return cats[0]
	}
	return CategoryOther
}
