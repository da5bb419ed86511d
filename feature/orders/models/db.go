package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a persisted customer order. The (reference_code, ee_invoice_no)
// pair is unique; once written an order is never updated by the upload flow.
type Order struct {
	ID                   uint       `gorm:"column:id;primaryKey" json:"id"`
	ReferenceCode        string     `gorm:"column:reference_code;size:50;uniqueIndex:unique_order" json:"reference_code"`
	EEInvoiceNo          string     `gorm:"column:ee_invoice_no;size:50;uniqueIndex:unique_order" json:"ee_invoice_no"`
	AWBNo                string     `gorm:"column:awb_no;size:50" json:"awb_no"`
	OrderStatus          string     `gorm:"column:order_status;size:50" json:"order_status"`
	ShippingStatus       string     `gorm:"column:shipping_status;size:50" json:"shipping_status"`
	OrderDate            time.Time  `gorm:"column:order_date" json:"order_date"`
	Courier              string     `gorm:"column:courier;size:100" json:"courier"`
	ShippingCustomerName string     `gorm:"column:shipping_customer_name;size:255" json:"shipping_customer_name"`
	ShippingAddress      string     `gorm:"column:shipping_address;type:text" json:"shipping_address"`
	ShippingCity         string     `gorm:"column:shipping_city;size:100" json:"shipping_city"`
	ShippingState        string     `gorm:"column:shipping_state;size:100" json:"shipping_state"`
	ShippingZipCode      string     `gorm:"column:shipping_zip_code;size:20" json:"shipping_zip_code"`
	BuyerGSTNum          string     `gorm:"column:buyer_gst_num;size:50" json:"buyer_gst_num"`
	CreatedAt            time.Time  `gorm:"column:created_at" json:"created_at"`
	SubOrders            []SubOrder `gorm:"foreignKey:OrderID" json:"sub_orders,omitempty"`
}

// TableName overrides the default table name.
func (Order) TableName() string {
	return "orders"
}

// SubOrder is a persisted order line item, globally unique by suborder_no and
// owned by exactly one Order.
type SubOrder struct {
	ID           uint            `gorm:"column:id;primaryKey" json:"id"`
	OrderID      uint            `gorm:"column:order_id;index" json:"order_id"`
	SuborderNo   string          `gorm:"column:suborder_no;size:50;uniqueIndex:unique_suborder" json:"suborder_no"`
	SKU          string          `gorm:"column:sku;size:50" json:"sku"`
	ProductName  string          `gorm:"column:product_name;type:text" json:"product_name"`
	Quantity     int             `gorm:"column:quantity" json:"quantity"`
	SellingPrice decimal.Decimal `gorm:"column:selling_price;type:decimal(10,2)" json:"selling_price"`
	TaxAmount    decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2)" json:"tax_amount"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	CreatedAt    time.Time       `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name.
func (SubOrder) TableName() string {
	return "sub_orders"
}

// Migrate creates the orders tables if they do not exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Order{}, &SubOrder{})
}

// ToOrder builds a persistable Order from the row's order-level fields.
func (r RawRow) ToOrder() (Order, error) {
	orderDate, err := ParseOrderDate(r.OrderDate)
	if err != nil {
		return Order{}, err
	}
	return Order{
		ReferenceCode:        r.ReferenceCode,
		EEInvoiceNo:          r.EEInvoiceNo,
		AWBNo:                r.AWBNo,
		OrderStatus:          r.OrderStatus,
		ShippingStatus:       r.ShippingStatus,
		OrderDate:            orderDate,
		Courier:              r.Courier,
		ShippingCustomerName: r.ShippingCustomerName,
		ShippingAddress:      r.ShippingAddress,
		ShippingCity:         r.ShippingCity,
		ShippingState:        r.ShippingState,
		ShippingZipCode:      r.ShippingZipCode,
		BuyerGSTNum:          r.BuyerGSTNum,
	}, nil
}

// ToSubOrder builds a persistable SubOrder owned by orderID.
func (r RawRow) ToSubOrder(orderID uint) SubOrder {
	return SubOrder{
		OrderID:      orderID,
		SuborderNo:   r.SuborderNo,
		SKU:          r.SKU,
		ProductName:  r.ProductName,
		Quantity:     r.ItemQuantity,
		SellingPrice: r.SellingPrice,
		TaxAmount:    r.Tax,
		TotalAmount:  r.OrderInvoiceAmount,
	}
}
