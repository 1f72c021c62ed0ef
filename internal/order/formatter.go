package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/cart"
)

// ErrEmptyCart rejects a checkout attempt with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

const messageHeader = "🍽️ *طلب جديد من النيل جورميه*\n\n"

// Format renders the cart as the order message sent to the restaurant:
// one bullet per line with the Arabic name, the size when present, the
// quantity and the line subtotal, followed by the grand total. The total
// uses the same per-line arithmetic as the cart engine.
func Format(lines []cart.Line) (string, decimal.Decimal, error) {
	if len(lines) == 0 {
		return "", decimal.Zero, ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString(messageHeader)

	total := decimal.Zero
	for _, l := range lines {
		subtotal := l.Subtotal()
		total = total.Add(subtotal)

		size := ""
		if l.Variant != nil {
			size = fmt.Sprintf(" (%s)", l.Variant.NameAR)
		}
		fmt.Fprintf(&b, "• %s%s × %d = %s درهم\n", l.NameAR, size, l.Qty, subtotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\n💰 *الإجمالي: %s درهم*", total.StringFixed(2))
	return b.String(), total, nil
}

// WhatsAppLink builds the deep link that opens a chat with the restaurant
// and the order message prefilled.
func WhatsAppLink(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}
