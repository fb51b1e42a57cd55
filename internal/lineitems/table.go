package lineitems

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrBlankRowPending is returned by CreateRow while a blank row of the table's
// type already exists.
var ErrBlankRowPending = errors.New("a blank row already exists")

// ResourceFetcher loads a catalog resource by id.
type ResourceFetcher interface {
	GetResource(ctx context.Context, id string) (*domain.Resource, error)
}

// Options toggles optional table behavior.
type Options struct {
	// AutoManageEmptyRows keeps exactly one trailing blank row after edits.
	AutoManageEmptyRows bool
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLogger sets the logger used for recoverable failures.
func WithLogger(l zerolog.Logger) TableOption {
	return func(t *Table) {
		t.logger = l
	}
}

// WithOptions sets the behavior flags.
func WithOptions(o Options) TableOption {
	return func(t *Table) {
		t.opts = o
	}
}

// WithResourceFetcher sets where unit changes reload resources from.
func WithResourceFetcher(f ResourceFetcher) TableOption {
	return func(t *Table) {
		t.fetcher = f
	}
}

// Table is the controller of one line item table, showing the rows of a
// single type of a document. It is not safe for concurrent use.
type Table struct {
	store    *Store
	resolver *ColumnResolver
	ctx      Context
	fetcher  ResourceFetcher
	logger   zerolog.Logger
	opts     Options

	// picked holds the resource last selected on a row, keyed by row _id so
	// entries follow their rows through reorders and deletes.
	picked map[string]*domain.Resource
}

// NewTable returns a controller over the rows of ctx.Type in doc.
func NewTable(doc *domain.Document, ctx Context, opts ...TableOption) *Table {
	t := &Table{
		store:    NewStore(doc),
		resolver: NewColumnResolver(ctx),
		logger:   zerolog.Nop(),
		picked:   make(map[string]*domain.Resource),
	}
	t.ctx = t.resolver.ctx
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Items returns every row of the document.
func (t *Table) Items() []domain.LineItem {
	return t.store.Items()
}

// Rows returns the document indexes of the rows shown by this table.
func (t *Table) Rows() []int {
	return t.store.Positions(t.ctx.Type)
}

// Resources returns the side table of picked resources by document index.
func (t *Table) Resources() map[int]*domain.Resource {
	out := make(map[int]*domain.Resource, len(t.picked))
	for i, item := range t.store.Items() {
		if r, ok := t.picked[item.ID]; ok {
			out[i] = r
		}
	}
	return out
}

// Cell returns the widget of column on the row at document index.
func (t *Table) Cell(column string, index int) Widget {
	return t.resolver.Resolve(column, t.store.Items(), index, t.Resources())
}

// Tooltip returns the hover text of a cell.
func (t *Table) Tooltip(column string, index int) string {
	return t.resolver.Tooltip(column, t.store.Items(), index)
}

// AddRowLabel is the caption of the add row button.
func (t *Table) AddRowLabel() string {
	if t.ctx.Type == domain.ItemTypeResource {
		return t.ctx.Translator.T("add_line")
	}
	return t.ctx.Translator.T("add_item")
}

// OnDragEnd moves a row within the table. Indexes are positions among the
// table's rows; a negative destination means the drag was cancelled.
func (t *Table) OnDragEnd(source, destination int) bool {
	if destination < 0 || source == destination {
		return false
	}
	return t.store.Reorder(t.ctx.Type, source, destination)
}

// CanCreateRow reports whether the add row button is enabled.
func (t *Table) CanCreateRow() bool {
	return !AnyEmpty(t.store.Items(), t.ctx.Type)
}

// CreateRow appends a blank row and returns its document index.
func (t *Table) CreateRow() (int, error) {
	if !t.CanCreateRow() {
		return -1, ErrBlankRowPending
	}
	return t.store.Insert(NewLineItem(t.ctx.Type)), nil
}

// DeleteRow removes the row at document index.
func (t *Table) DeleteRow(index int) error {
	item, ok := t.store.Get(index)
	if !ok {
		return fmt.Errorf("delete row %d: %w", index, ErrRowOutOfRange)
	}
	if err := t.store.Delete(index); err != nil {
		return err
	}
	delete(t.picked, item.ID)
	return nil
}

// OnPropertyChange writes one field of the row at index.
func (t *Table) OnPropertyChange(key string, value any, index int) error {
	if err := t.store.SetProperty(index, key, value); err != nil {
		return err
	}
	return t.commit(index)
}

// OnLineItemChange replaces the row at index.
func (t *Table) OnLineItemChange(index int, item domain.LineItem) error {
	if err := t.store.Update(index, item); err != nil {
		return err
	}
	return t.commit(index)
}

// OnResourceChange applies a resource picked in the selector. A nil resource
// means the selection was cleared or free text was typed; only product_key
// is written then.
func (t *Table) OnResourceChange(index int, label string, res *domain.Resource) error {
	item, ok := t.store.Get(index)
	if !ok {
		return fmt.Errorf("resource change on row %d: %w", index, ErrRowOutOfRange)
	}
	if res == nil {
		delete(t.picked, item.ID)
		return t.OnPropertyChange("product_key", label, index)
	}
	t.picked[item.ID] = res

	unit := DefaultUnit
	if item.Unit != "" || item.RateLabel != "" {
		unit = CurrentUnit(item, t.ctx.Translator)
	}
	rate := ResolveRate(res, unit)

	item.ProductKey = res.Name
	item.Notes = res.Description
	item.Cost = rate
	item.Quantity = decimal.NewFromInt(1)
	if item.BillableTime.IsZero() {
		item.BillableTime = decimal.NewFromInt(1)
	}
	item.ResourceID = domain.StringPtr(res.ID)
	item.Unit = string(unit)
	item.RateLabel = FormatRateLabel(rate, unit, t.ctx.Money, t.ctx.Translator)

	return t.OnLineItemChange(index, item)
}

// OnUnitChange switches the unit of a row. Rows linked to a resource reload
// it and take the rate for the new unit; when the reload fails only the unit
// changes.
func (t *Table) OnUnitChange(ctx context.Context, index int, unit Unit) error {
	item, ok := t.store.Get(index)
	if !ok {
		return fmt.Errorf("unit change on row %d: %w", index, ErrRowOutOfRange)
	}
	item.Unit = string(unit)

	if item.HasResource() && t.ctx.Type == domain.ItemTypeResource {
		res, err := t.fetchResource(ctx, item.ResourceIDValue())
		if err != nil {
			t.logger.Warn().Err(err).
				Str("resource_id", item.ResourceIDValue()).
				Msg("Could not fetch resource to update rate")
		} else {
			t.picked[item.ID] = res
			rate := ResolveRate(res, unit)
			item.Cost = rate
			item.RateLabel = FormatRateLabel(rate, unit, t.ctx.Money, t.ctx.Translator)
		}
	}

	return t.OnLineItemChange(index, item)
}

func (t *Table) fetchResource(ctx context.Context, id string) (*domain.Resource, error) {
	if t.fetcher == nil {
		return nil, errors.New("no resource fetcher configured")
	}
	res, err := t.fetcher.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("resource %s not found", id)
	}
	return res, nil
}

// OnProductChange applies a product picked in the product selector. Tax
// slots the company has not enabled are cleared first. A nil product only
// writes the typed label.
func (t *Table) OnProductChange(index int, label string, product *domain.Product) error {
	item, ok := t.store.Get(index)
	if !ok {
		return fmt.Errorf("product change on row %d: %w", index, ErrRowOutOfRange)
	}
	if product == nil {
		return t.OnPropertyChange("product_key", label, index)
	}

	p := *product
	if t.ctx.Company != nil {
		ApplyProductTaxPolicy(&p, t.ctx.Company.EnabledItemTaxRates)
	}

	item.ProductKey = p.ProductKey
	item.Notes = p.Notes
	item.Cost = p.Price
	if t.store.doc.Kind == domain.DocumentPurchaseOrder {
		item.Cost = p.Cost
	}
	item.Quantity = p.Quantity
	if item.Quantity.IsZero() {
		item.Quantity = decimal.NewFromInt(1)
	}
	item.TaxID = p.TaxID
	item.TaxName1, item.TaxRate1 = p.TaxName1, p.TaxRate1
	item.TaxName2, item.TaxRate2 = p.TaxName2, p.TaxRate2
	item.TaxName3, item.TaxRate3 = p.TaxName3, p.TaxRate3
	item.CustomValue1 = p.CustomValue1
	item.CustomValue2 = p.CustomValue2
	item.CustomValue3 = p.CustomValue3
	item.CustomValue4 = p.CustomValue4

	return t.OnLineItemChange(index, item)
}

// OnTaxRateChange sets or, with a nil rate, clears a tax slot.
func (t *Table) OnTaxRateChange(property string, index int, rate *TaxRate) error {
	item, ok := t.store.Get(index)
	if !ok {
		return fmt.Errorf("tax change on row %d: %w", index, ErrRowOutOfRange)
	}
	if err := ApplyTaxRate(&item, TaxSlot(property), rate); err != nil {
		return err
	}
	return t.OnLineItemChange(index, item)
}

// HydrateResources loads the resources of linked rows missing from the side
// table, e.g. after opening a saved document. Rows that fail to load are
// skipped and reported together.
func (t *Table) HydrateResources(ctx context.Context) error {
	var result *multierror.Error
	for _, p := range t.Rows() {
		item, _ := t.store.Get(p)
		if !item.HasResource() {
			continue
		}
		if _, ok := t.picked[item.ID]; ok {
			continue
		}
		res, err := t.fetchResource(ctx, item.ResourceIDValue())
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("row %d: %w", p, err))
			continue
		}
		t.picked[item.ID] = res
	}
	return result.ErrorOrNil()
}

// Reconcile applies the blank row rule when it is enabled.
func (t *Table) Reconcile() bool {
	if !t.opts.AutoManageEmptyRows {
		return false
	}
	items, changed := ReconcileEmptyRows(t.store.Items(), t.ctx.Type)
	if changed {
		t.store.Replace(items)
		t.prunePicked()
	}
	return changed
}

func (t *Table) prunePicked() {
	live := make(map[string]struct{}, t.store.Len())
	for _, item := range t.store.Items() {
		live[item.ID] = struct{}{}
	}
	for id := range t.picked {
		if _, ok := live[id]; !ok {
			delete(t.picked, id)
		}
	}
}

// Totals sums the computed columns of the whole document.
func (t *Table) Totals() DocumentTotals {
	return Sum(t.store.Items())
}

func (t *Table) commit(index int) error {
	item, _ := t.store.Get(index)
	Recalculate(&item, t.moneyPrecision())
	if err := t.store.Update(index, item); err != nil {
		return err
	}
	t.Reconcile()
	return nil
}

func (t *Table) moneyPrecision() int {
	if t.ctx.Currency.Code == "" && t.ctx.Currency.Symbol == "" {
		return domain.DefaultCurrency.Precision
	}
	return t.ctx.Currency.Precision
}
