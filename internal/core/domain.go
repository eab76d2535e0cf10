package core

import (
	"errors"
	"strings"
	"time"
)

// Department is the organizational unit charged for an expense.
type Department string

const (
	DepartmentBakery         Department = "bakery"
	DepartmentBar            Department = "bar"
	DepartmentKitchen        Department = "kitchen"
	DepartmentMaintenance    Department = "maintenance"
	DepartmentFrontOfHouse   Department = "front_of_house"
	DepartmentAdministration Department = "administration"

	// DepartmentAll is the list-filter sentinel; it is never stored on a record.
	DepartmentAll Department = "all"
)

// Category classifies what an expense was for.
type Category string

const (
	CategoryIngredients Category = "ingredients"
	CategoryEquipment   Category = "equipment"
	CategoryUtilities   Category = "utilities"
	CategoryLabor       Category = "labor"
	CategoryMarketing   Category = "marketing"
	CategoryMaintenance Category = "maintenance"
	CategorySupplies    Category = "supplies"
	CategoryBeverages   Category = "beverages"
	CategoryCleaning    Category = "cleaning"
	CategoryOther       Category = "other"
)

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCredit   PaymentMethod = "credit"
	PaymentDebit    PaymentMethod = "debit"
	PaymentCheck    PaymentMethod = "check"
	PaymentTransfer PaymentMethod = "transfer"
)

type (
	// Date is a calendar date; the time-of-day component is only meaningful
	// at the export range boundary.
	Date struct {
		time.Time
	}

	// Expense is one logged transaction. Records are immutable once stored.
	Expense struct {
		ID            string
		Date          Date
		Department    Department
		Category      Category
		Item          string
		Amount        Money
		Supplier      string
		PaymentMethod PaymentMethod
		Notes         string
	}
)

var (
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrEmptyItem            = errors.New("empty item description")
	ErrEmptySupplier        = errors.New("empty supplier")
	ErrUnknownDepartment    = errors.New("unknown department")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Departments returns all departments in entry-form order.
func Departments() []Department {
	return []Department{
		DepartmentBakery,
		DepartmentBar,
		DepartmentKitchen,
		DepartmentMaintenance,
		DepartmentFrontOfHouse,
		DepartmentAdministration,
	}
}

// PaymentMethods returns all payment methods in entry-form order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentCredit,
		PaymentDebit,
		PaymentCheck,
		PaymentTransfer,
	}
}

func (d Department) Valid() bool {
	switch d {
	case DepartmentBakery, DepartmentBar, DepartmentKitchen,
		DepartmentMaintenance, DepartmentFrontOfHouse, DepartmentAdministration:
		return true
	}
	return false
}

// Display replaces underscores with spaces ("front_of_house" -> "front of house").
// No casing change is applied here.
func (d Department) Display() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

func (c Category) Valid() bool {
	switch c {
	case CategoryIngredients, CategoryEquipment, CategoryUtilities,
		CategoryLabor, CategoryMarketing, CategoryMaintenance,
		CategorySupplies, CategoryBeverages, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentCheck, PaymentTransfer:
		return true
	}
	return false
}

// ParseDepartment parses a form value into a Department.
// The DepartmentAll sentinel is accepted for filter parameters.
func ParseDepartment(s string) (Department, error) {
	d := Department(strings.TrimSpace(s))
	if d == DepartmentAll || d.Valid() {
		return d, nil
	}
	return "", ErrUnknownDepartment
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(strings.TrimSpace(s))
	if !p.Valid() {
		return "", ErrUnknownPaymentMethod
	}
	return p, nil
}

// NewDate creates a Date at the start of the given local calendar day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)}
}

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// SameMonth reports whether two dates fall in the same calendar month and year.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if !e.Department.Valid() {
		return ErrUnknownDepartment
	}
	if !e.Category.Valid() {
		return ErrUnknownCategory
	}
	if len(strings.TrimSpace(e.Item)) == 0 {
		return ErrEmptyItem
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Supplier)) == 0 {
		return ErrEmptySupplier
	}
	if !e.PaymentMethod.Valid() {
		return ErrUnknownPaymentMethod
	}
	return nil
}
