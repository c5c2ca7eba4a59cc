package listing

import (
	"codemart/internal/ethereum"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var TimeNow = time.Now

const MaxTags = 5

var LanguageOptions = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C#",
	"Go",
	"Rust",
	"PHP",
	"Ruby",
	"Swift",
	"Kotlin",
	"HTML/CSS",
	"Solidity",
	"Other",
}

// Draft is what a seller submits to create a listing.
type Draft struct {
	Title       string
	Description string
	Code        string
	Language    string
	Price       string
	Tags        []string
}

func (d Draft) Validate() error {
	d = d.normalized()
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Description, validation.Required),
		validation.Field(&d.Code, validation.Required),
		validation.Field(&d.Language, validation.Required, validation.In(languageValues()...)),
		validation.Field(&d.Price, validation.Required, validation.By(validPrice)),
		validation.Field(&d.Tags, validation.Length(0, MaxTags)),
	)
}

// New builds a listing from a validated draft.
func New(d Draft, seller string) Listing {
	d = d.normalized()
	return Listing{
		ID:          uuid.NewString(),
		Title:       d.Title,
		Description: d.Description,
		Code:        d.Code,
		Language:    d.Language,
		Price:       d.Price,
		Seller:      seller,
		CreatedAt:   TimeNow().UnixMilli(),
		Tags:        d.Tags,
		Purchasers:  []string{},
	}
}

// normalized trims text fields and drops blank tags. Code keeps its indentation.
func (d Draft) normalized() Draft {
	tags := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	code := d.Code
	if strings.TrimSpace(code) == "" {
		code = ""
	}

	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Code:        code,
		Language:    strings.TrimSpace(d.Language),
		Price:       strings.TrimSpace(d.Price),
		Tags:        tags,
	}
}

func validPrice(value any) error {
	price, _ := value.(string)
	if _, err := ethereum.ToWei(price); err != nil {
		return errors.New("must be a positive amount with at most 18 decimal places")
	}
	return nil
}

func languageValues() []any {
	values := make([]any, len(LanguageOptions))
	for i, lang := range LanguageOptions {
		values[i] = lang
	}
	return values
}
