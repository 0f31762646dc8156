package notify

import (
	"strconv"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
)

// DisplayTimeLayout is how appointment times appear in messages.
const DisplayTimeLayout = "2006-01-02 03:04 PM"

const missingValue = "N/A"

// BookingDetails is what message tokens are built from.
type BookingDetails struct {
	BookingID          int64
	CustomerName       string
	Email              string
	Phone              string
	ServiceName        string
	ServiceDescription string
	ServicePriceCents  *int64
	Start              time.Time
	End                time.Time
	Status             string
	NumPeople          int
}

type TokenFormatter struct {
	location *time.Location
	siteName string
}

// NewTokenFormatter falls back to UTC when the display zone cannot be loaded.
func NewTokenFormatter(displayTimeZone, siteName string) *TokenFormatter {
	loc, err := time.LoadLocation(displayTimeZone)
	if err != nil || displayTimeZone == "" {
		loc = time.UTC
	}
	return &TokenFormatter{location: loc, siteName: siteName}
}

func (f *TokenFormatter) FormatTime(t time.Time) string {
	return t.In(f.location).Format(DisplayTimeLayout)
}

func (f *TokenFormatter) SiteName() string {
	return f.siteName
}

func (f *TokenFormatter) BookingTokens(d BookingDetails) notification.Tokens {
	tokens := notification.Tokens{
		notification.TokenUserName:           d.CustomerName,
		notification.TokenEmail:              d.Email,
		notification.TokenPhoneNumber:        orMissing(d.Phone),
		notification.TokenServiceName:        orMissing(d.ServiceName),
		notification.TokenServiceDescription: d.ServiceDescription,
		notification.TokenServicePrice:       missingValue,
		notification.TokenStartTime:          f.FormatTime(d.Start),
		notification.TokenEndTime:            f.FormatTime(d.End),
		notification.TokenBookingID:          strconv.FormatInt(d.BookingID, 10),
		notification.TokenStatus:             d.Status,
		notification.TokenNumPeople:          strconv.Itoa(d.NumPeople),
		notification.TokenSiteName:           f.siteName,
	}
	if d.NumPeople < 1 {
		tokens[notification.TokenNumPeople] = "1"
	}
	// the currency symbol lives in the value so a missing price reads "N/A", not "$N/A"
	if d.ServicePriceCents != nil {
		if price, err := service.NewMoney(*d.ServicePriceCents); err == nil {
			tokens[notification.TokenServicePrice] = "$" + price.String()
		}
	}
	return tokens
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
