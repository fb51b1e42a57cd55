package lineitems

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownProperty is returned when a key does not name a line item field.
	ErrUnknownProperty = errors.New("unknown line item property")
	// ErrInvalidValue is returned when a value cannot be stored in the field.
	ErrInvalidValue = errors.New("invalid value for line item property")
)

// aliases maps column names used in table settings onto line item fields.
var aliases = map[string]string{
	"item":        "product_key",
	"description": "notes",
	"unit_cost":   "cost",
	"rate":        "cost",
	"hours":       "quantity",
	"tax":         "tax_rate1",
	"tax_name":    "tax_name1",
	"tax_rate":    "tax_rate1",
}

// ResolveProperty turns a column key into a line item field name. Keys may be
// written as "<entity>.<field>"; the field part is then looked up in the alias
// table. Keys without a delimiter or alias are returned verbatim.
func ResolveProperty(column string) string {
	property := column
	if _, field, ok := strings.Cut(column, "."); ok && field != "" {
		property = field
	}
	if alias, ok := aliases[property]; ok {
		return alias
	}
	return property
}

// Get returns the value of a line item field by its JSON name.
func Get(item domain.LineItem, key string) (any, bool) {
	if p, ok := decimalField(&item, key); ok {
		return *p, true
	}
	if p, ok := stringField(&item, key); ok {
		return *p, true
	}
	switch key {
	case "_id":
		return item.ID, true
	case "type_id":
		return item.TypeID, true
	case "is_amount_discount":
		return item.IsAmountDiscount, true
	case "resource_id":
		return item.ResourceIDValue(), true
	}
	return nil, false
}

// GetString returns a field rendered for display. Zero numbers render as ""
// so empty inputs stay empty.
func GetString(item domain.LineItem, key string) string {
	v, ok := Get(item, key)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case domain.ItemType:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case decimal.Decimal:
		if x.IsZero() {
			return ""
		}
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Set writes a field by its JSON name. Numeric fields accept numbers or
// numeric strings; unparsable strings become zero, like an emptied input.
func Set(item *domain.LineItem, key string, value any) error {
	if p, ok := decimalField(item, key); ok {
		d, err := toDecimal(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*p = d
		return nil
	}
	if p, ok := stringField(item, key); ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: %w: want string, got %T", key, ErrInvalidValue, value)
		}
		*p = s
		return nil
	}
	switch key {
	case "is_amount_discount":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: %w: want bool, got %T", key, ErrInvalidValue, value)
		}
		item.IsAmountDiscount = b
		return nil
	case "resource_id":
		switch v := value.(type) {
		case nil:
			item.ResourceID = nil
		case string:
			if v == "" {
				item.ResourceID = nil
			} else {
				item.ResourceID = &v
			}
		case *string:
			item.ResourceID = v
		default:
			return fmt.Errorf("%s: %w: got %T", key, ErrInvalidValue, value)
		}
		return nil
	case "type_id":
		s, ok := value.(string)
		if !ok {
			if t, isType := value.(domain.ItemType); isType {
				s, ok = string(t), true
			}
		}
		if !ok {
			return fmt.Errorf("%s: %w: got %T", key, ErrInvalidValue, value)
		}
		item.TypeID = domain.ItemType(s)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, key)
}

func decimalField(item *domain.LineItem, key string) (*decimal.Decimal, bool) {
	switch key {
	case "cost":
		return &item.Cost, true
	case "quantity":
		return &item.Quantity, true
	case "billable_time":
		return &item.BillableTime, true
	case "discount":
		return &item.Discount, true
	case "tax_rate1":
		return &item.TaxRate1, true
	case "tax_rate2":
		return &item.TaxRate2, true
	case "tax_rate3":
		return &item.TaxRate3, true
	case "line_total":
		return &item.LineTotal, true
	case "gross_line_total":
		return &item.GrossLineTotal, true
	case "tax_amount":
		return &item.TaxAmount, true
	}
	return nil, false
}

func stringField(item *domain.LineItem, key string) (*string, bool) {
	switch key {
	case "product_key":
		return &item.ProductKey, true
	case "notes":
		return &item.Notes, true
	case "unit":
		return &item.Unit, true
	case "rate_label":
		return &item.RateLabel, true
	case "tax_id":
		return &item.TaxID, true
	case "tax_name1":
		return &item.TaxName1, true
	case "tax_name2":
		return &item.TaxName2, true
	case "tax_name3":
		return &item.TaxName3, true
	case "custom_value1":
		return &item.CustomValue1, true
	case "custom_value2":
		return &item.CustomValue2, true
	case "custom_value3":
		return &item.CustomValue3, true
	case "custom_value4":
		return &item.CustomValue4, true
	}
	return nil, false
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, nil
		}
		return *v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, nil
		}
		return d, nil
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: want number, got %T", ErrInvalidValue, value)
	}
}
