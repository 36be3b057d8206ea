package entities

import (
	"fmt"
	"strings"
)

// Field-level redaction applied to every customer-facing (public) response.
// This is a contract, not a display convenience: the same masking runs
// regardless of transport.

// MaskName keeps the first name and the initial of the last name:
// "Rafael Duarte Lima" -> "Rafael L****".
func MaskName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	last := []rune(parts[len(parts)-1])
	return fmt.Sprintf("%s %c****", parts[0], last[0])
}

// MaskPhone keeps the area code and the last four digits:
// "+5548988264694" -> "(48) *****-4694". Brazilian numbers carry the 55
// country code; it is stripped before the area code is read.
func MaskPhone(phone string) string {
	digits := keepDigits(phone)
	if strings.HasPrefix(digits, "55") && len(digits) >= 12 {
		digits = digits[2:]
	}
	if len(digits) < 6 {
		return "*****"
	}
	area := digits[:2]
	last := digits[len(digits)-4:]
	return fmt.Sprintf("(%s) *****-%s", area, last)
}

// MaskSerial keeps only the first and last characters.
func MaskSerial(serial string) string {
	runes := []rune(strings.TrimSpace(serial))
	if len(runes) == 0 {
		return ""
	}
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}

// RedactedCustomer returns a masked copy safe for external exposure. Email is
// dropped entirely rather than masked.
func RedactedCustomer(c *CustomerSnapshot) *CustomerSnapshot {
	if c == nil {
		return nil
	}
	out := &CustomerSnapshot{
		ID:   c.ID,
		Name: MaskName(c.Name),
	}
	if c.Phone != "" {
		out.Phone = MaskPhone(c.Phone)
	}
	return out
}

// RedactedDevice masks the serial number and keeps brand/model as-is.
func RedactedDevice(d *DeviceSnapshot) *DeviceSnapshot {
	if d == nil {
		return nil
	}
	return &DeviceSnapshot{
		ID:           d.ID,
		Brand:        d.Brand,
		Model:        d.Model,
		SerialNumber: MaskSerial(d.SerialNumber),
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
