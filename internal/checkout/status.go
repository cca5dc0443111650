package checkout

type Status string

const (
	StatusSelecting            Status = "SELECTING"
	StatusCollectingDetails    Status = "COLLECTING_DETAILS"
	StatusAwaitingConfirmation Status = "AWAITING_CONFIRMATION"
	StatusSubmitting           Status = "SUBMITTING"
	StatusSucceeded            Status = "SUCCEEDED"
	StatusFailed               Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

type Method string

const (
	MethodCash Method = "CASH"
	MethodCard Method = "CARD"
	MethodUPI  Method = "UPI"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI:
		return true
	}

	return false
}

func (m Method) String() string {
	return string(m)
}

type CardType string

const (
	CardVisa       CardType = "VISA"
	CardMastercard CardType = "MASTERCARD"
	CardAmex       CardType = "AMEX"
	CardRupay      CardType = "RUPAY"
	CardUnknown    CardType = "UNKNOWN"
)
