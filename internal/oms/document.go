package oms

import (
	"encoding/xml"
	"time"

	"github.com/rookgm/orderproc/internal/models"
)

// orderDocument mirrors the Order entity field for field on the wire.
type orderDocument struct {
	XMLName            xml.Name          `xml:"order"`
	FileTypeIdentifier string            `xml:"fileTypeIdentifier"`
	OrderNumber        string            `xml:"orderNumber"`
	OrderDate          string            `xml:"orderDate"`
	BuyerEAN           int64             `xml:"buyerEan"`
	SupplierEAN        int64             `xml:"supplierEan"`
	Comment            string            `xml:"comment,omitempty"`
	Articles           []articleDocument `xml:"articles>article"`
}

type articleDocument struct {
	EANCode     int64  `xml:"eanCode"`
	Description string `xml:"description"`
	Quantity    int    `xml:"quantity"`
	UnitPrice   string `xml:"unitPrice"`
}

func newOrderDocument(order *models.Order) orderDocument {
	doc := orderDocument{
		FileTypeIdentifier: order.FileTypeIdentifier,
		OrderNumber:        order.OrderNumber.String(),
		OrderDate:          order.OrderDate.Format(time.RFC3339),
		BuyerEAN:           order.BuyerEAN,
		SupplierEAN:        order.SupplierEAN,
		Comment:            order.Comment,
		Articles:           make([]articleDocument, 0, len(order.Articles)),
	}
	for _, article := range order.Articles {
		doc.Articles = append(doc.Articles, articleDocument{
			EANCode:     article.EANCode,
			Description: article.Description,
			Quantity:    article.Quantity,
			UnitPrice:   article.UnitPrice.String(),
		})
	}
	return doc
}
