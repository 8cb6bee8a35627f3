package enum

import "encoding/json"

// PaymentMethod represents how a sale is paid
type PaymentMethod int

const (
	PaymentCash  PaymentMethod = 0
	PaymentCard  PaymentMethod = 1
	PaymentCheck PaymentMethod = 2
)

func (p PaymentMethod) String() string {
	names := [...]string{"cash", "card", "check"}
	if int(p) < 0 || int(p) >= len(names) {
		return "cash"
	}
	return names[p]
}

// ParsePaymentMethod maps a wire value to its variant, defaulting to cash.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "card":
		return PaymentCard
	case "check":
		return PaymentCheck
	default:
		return PaymentCash
	}
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentMethod(i)
		return nil
	}
	*p = ParsePaymentMethod(str)
	return nil
}
