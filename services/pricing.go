package services

import "github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"

// DefaultTaxRate is the GST rate applied to every order.
const DefaultTaxRate = 0.18

// EmptyCart is the stable code returned when checkout is attempted with no
// cart lines.
const EmptyCart = "EMPTY_CART"

// Subtotal sums unit price times quantity over the resolved lines.
func Subtotal(lines []ResolvedLine) float64 {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return subtotal
}

// ComputeBreakdown combines resolved cart lines, a shipping charge and an
// already-validated discount amount into the final price breakdown.
//
// Tax applies to the pre-discount subtotal; the discount comes off at the
// end. Amounts stay as plain floats — rounding to two decimals is a display
// concern only.
func ComputeBreakdown(lines []ResolvedLine, shippingCharge, discountAmount, taxRate float64) (*models.PriceBreakdown, *ServiceError) {
	if len(lines) == 0 {
		return nil, &ServiceError{StatusCode: 400, Code: EmptyCart, Message: "Cart is empty"}
	}

	subtotal := Subtotal(lines)
	taxAmount := subtotal * taxRate

	return &models.PriceBreakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		ShippingCharge: shippingCharge,
		TaxAmount:      taxAmount,
		TotalAmount:    subtotal + shippingCharge + taxAmount - discountAmount,
	}, nil
}
