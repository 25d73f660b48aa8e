package sms

import (
	"time"

	"github.com/creditgo/creditgo/internal/domain"
)

var lagos = time.FixedZone("WAT", 60*60)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, lagos)
}

// DemoMessages returns three months of sample alerts used when the device
// message store is unavailable. A fresh slice is returned on every call.
func DemoMessages() []domain.RawMessage {
	return []domain.RawMessage{
		{
			Body:    "Credit Alert! Your GTBank account 0123XXXXXX has been credited with NGN300,000.00. Ref: SALARY/JAN/2026. Balance: NGN485,000.00",
			Date:    at(2026, time.January, 5, 9, 30),
			Address: "GTBank",
		},
		{
			Body:    "Debit Alert: NGN45,000.00 was debited from your account for RENT SAVINGS. Ref: AUTO-SAVE. Balance: NGN440,000.00",
			Date:    at(2026, time.January, 6, 10, 0),
			Address: "GTBank",
		},
		{
			Body:    "Credit: Your Kuda account has been credited with NGN75,000.00 from UPWORK INC. Balance: NGN120,000.00",
			Date:    at(2026, time.January, 8, 14, 22),
			Address: "Kuda",
		},
		{
			Body:    "You received NGN25,000.00 from FIVERR PAYMENT. Your new balance is NGN145,000.00",
			Date:    at(2026, time.January, 9, 11, 45),
			Address: "OPay",
		},
		{
			Body:    "Debit: NGN15,000.00 POS purchase at SHOPRITE IKEJA. Balance: NGN425,000.00",
			Date:    at(2026, time.January, 10, 16, 30),
			Address: "GTBank",
		},
		{
			Body:    "Credit Alert! Your account has been credited with NGN300,000.00. Ref: SALARY/DEC/2025. Balance: NGN520,000.00",
			Date:    at(2025, time.December, 5, 9, 15),
			Address: "GTBank",
		},
		{
			Body:    "Credit: NGN50,000.00 from UPWORK FREELANCE PAYMENT. Balance: NGN180,000.00",
			Date:    at(2025, time.December, 12, 15, 0),
			Address: "Kuda",
		},
		{
			Body:    "Debit: NGN80,000.00 transferred to RENT ACCOUNT. Balance: NGN440,000.00",
			Date:    at(2025, time.December, 15, 8, 0),
			Address: "GTBank",
		},
		{
			Body:    "Credit: NGN35,000.00 from FIVERR. Balance: NGN115,000.00",
			Date:    at(2025, time.December, 20, 12, 30),
			Address: "OPay",
		},
		{
			Body:    "Credit Alert! NGN300,000.00 credited. Ref: SALARY/NOV/2025. Balance: NGN450,000.00",
			Date:    at(2025, time.November, 5, 9, 0),
			Address: "GTBank",
		},
		{
			Body:    "Credit: NGN60,000.00 from UPWORK. Balance: NGN200,000.00",
			Date:    at(2025, time.November, 15, 14, 0),
			Address: "Kuda",
		},
	}
}
