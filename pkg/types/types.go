// Package domain defines the core business types for the vendasml service.
package domain

import (
	"time"
)

// TokenRecord is the persisted credential for one Mercado Livre user.
// Exactly one record exists per user; refreshes overwrite it in place.
type TokenRecord struct {
	UserID       string    `json:"user_id"       db:"user_id"`
	AccessToken  string    `json:"access_token"  db:"access_token"`
	RefreshToken string    `json:"refresh_token" db:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"    db:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"    db:"expires_at"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// IsExpired reports whether the access token has passed its expiry.
func (r *TokenRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// NeedsRefresh reports whether the access token is within threshold of
// expiry. A record with no expiry timestamp always needs a refresh; using a
// token of unknown validity is worse than one extra grant round trip.
func (r *TokenRecord) NeedsRefresh(threshold time.Duration, now time.Time) bool {
	if r.ExpiresAt.IsZero() {
		return true
	}
	return !now.Before(r.ExpiresAt.Add(-threshold))
}

// TokenGrant is the wire shape of a Mercado Livre OAuth grant response,
// returned for both authorization_code and refresh_token grants.
type TokenGrant struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	UserID       int64  `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
}

// ItemRequest is the payload for creating or updating a marketplace item.
// The schema tags drive request validation at the API boundary; the same
// shape is sent to the Mercado Livre items endpoint unchanged.
type ItemRequest struct {
	Title             string          `json:"title"              minLength:"1" maxLength:"256" doc:"Item title"`
	CategoryID        string          `json:"category_id"        minLength:"1"                 doc:"Mercado Livre category ID (e.g. MLB5672)"`
	Price             float64         `json:"price"              exclusiveMinimum:"0"          doc:"Item price, must be greater than zero"`
	CurrencyID        string          `json:"currency_id"        pattern:"^[A-Z]{3}$"          doc:"Three-letter currency code (e.g. BRL)"`
	AvailableQuantity int             `json:"available_quantity" minimum:"1"                   doc:"Units available for sale"`
	BuyingMode        string          `json:"buying_mode"        minLength:"1"                 doc:"Buying mode (e.g. buy_it_now)"`
	Condition         string          `json:"condition"          minLength:"1"                 doc:"Item condition (new, used)"`
	ListingTypeID     string          `json:"listing_type_id"    minLength:"1"                 doc:"Listing type (e.g. gold_special, bronze)"`
	Description       ItemDescription `json:"description"`
	Pictures          []ItemPicture   `json:"pictures"           minItems:"1" maxItems:"12"    doc:"Item pictures, 1 to 12 entries"`
}

// ItemDescription is the plain-text description of an item.
type ItemDescription struct {
	PlainText string `json:"plain_text" minLength:"1" maxLength:"50000" doc:"Plain-text item description"`
}

// ItemPicture is a single item picture reference.
type ItemPicture struct {
	Source string `json:"source" minLength:"1" doc:"Picture source URL"`
}

// ItemResponse is the subset of the Mercado Livre item representation the
// service exposes to callers.
type ItemResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	Status            string  `json:"status,omitempty"`
	Permalink         string  `json:"permalink,omitempty"`
}

// Category is a Mercado Livre category node. Children are populated only on
// single-category reads; site-level listings return summaries without them.
type Category struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	ChildrenCategories []Category        `json:"children_categories,omitempty"`
	Settings           *CategorySettings `json:"settings,omitempty"`
}

// CategorySettings carries the category policy flags the marketplace reports.
type CategorySettings struct {
	AdultContent       *bool    `json:"adult_content,omitempty"`
	BuyingAllowed      *bool    `json:"buying_allowed,omitempty"`
	BuyingModes        []string `json:"buying_modes,omitempty"`
	Currencies         []string `json:"currencies,omitempty"`
	ItemConditions     []string `json:"item_conditions,omitempty"`
	ListingAllowed     *bool    `json:"listing_allowed,omitempty"`
	MaxDescriptionLen  *int     `json:"max_description_length,omitempty"`
	MaxPicturesPerItem *int     `json:"max_pictures_per_item,omitempty"`
	MaxTitleLength     *int     `json:"max_title_length,omitempty"`
	MaximumPrice       *float64 `json:"maximum_price,omitempty"`
	MinimumPrice       *float64 `json:"minimum_price,omitempty"`
	ShippingModes      []string `json:"shipping_modes,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}
