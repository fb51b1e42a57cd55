package domain

// DocumentKind is the kind of document that owns a line item table.
type DocumentKind string

const (
	DocumentInvoice          DocumentKind = "invoice"
	DocumentRecurringInvoice DocumentKind = "recurring_invoice"
	DocumentPurchaseOrder    DocumentKind = "purchase_order"
)

// RelationType names the counterparty field whose currency applies to the document.
type RelationType string

const (
	RelationClient RelationType = "client_id"
	RelationVendor RelationType = "vendor_id"
)

// Document is the parent of a line item table.
type Document struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	ClientID  string       `json:"client_id,omitempty"`
	VendorID  string       `json:"vendor_id,omitempty"`
	LineItems []LineItem   `json:"line_items"`
}

// RelationType returns vendor_id for purchase orders and client_id otherwise.
func (d *Document) RelationType() RelationType {
	if d.Kind == DocumentPurchaseOrder {
		return RelationVendor
	}
	return RelationClient
}

// CounterpartyID returns the client or vendor id depending on the relation type.
func (d *Document) CounterpartyID() string {
	if d.RelationType() == RelationVendor {
		return d.VendorID
	}
	return d.ClientID
}
