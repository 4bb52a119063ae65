// Package model defines domain entities exchanged with the backend API.
package model

import "time"

// Role is the access level attached to a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the current-user record returned by GET /user/me.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UserRef is a shallow reference to a user embedded in other documents.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// Profile is the artist-facing profile with social fields.
type Profile struct {
	ID           string   `json:"_id"`
	Username     string   `json:"username"`
	Bio          string   `json:"bio,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	CoverImage   string   `json:"coverImage,omitempty"`
	Followers    []string `json:"followers,omitempty"`
	Following    []string `json:"following,omitempty"`
}

// Image is a single uploaded image attached to an art piece.
type Image struct {
	URL string `json:"url"`
}

// Art is a listed artwork owned by an artist.
type Art struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Images   []Image `json:"images,omitempty"`
	Artist   UserRef `json:"artist"`
}

// OrderStatus is mutated only from the artist side.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Address is the delivery address on an order.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Order references an Art and a buyer. Payment is fixed to cash on delivery
// in the current flow.
type Order struct {
	ID                   string      `json:"_id"`
	Art                  Art         `json:"art"`
	Buyer                UserRef     `json:"buyer"`
	PhoneNumber          string      `json:"phoneNumber"`
	PhoneNumberSecondary string      `json:"phoneNumberSecondary,omitempty"`
	Address              Address     `json:"address"`
	PaymentMethod        string      `json:"paymentMethod"`
	Status               OrderStatus `json:"status"`
	CreatedAt            time.Time   `json:"createdAt"`
}

// Comment is one entry in a blog's ordered comment list.
type Comment struct {
	ID        string    `json:"_id"`
	User      UserRef   `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Blog is a post with likes (user id set) and comments.
type Blog struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Author      UserRef   `json:"author"`
	Likes       []string  `json:"likes,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikedBy reports whether userID is in the blog's like set.
func (b *Blog) LikedBy(userID string) bool {
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// UnitStatus is the sales state of a unit. Transitions happen server-side;
// the client only re-fetches after booking.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitBooked    UnitStatus = "booked"
	UnitSold      UnitStatus = "sold"
	UnitMokp      UnitStatus = "mokp"
	UnitHold      UnitStatus = "hold"
)

// PaymentMethod on a booking.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayInstallments PaymentMethod = "installments"
	PayTransfer     PaymentMethod = "transfer"
	PayOther        PaymentMethod = "other"
)

// UnitModel discriminates which unit collection a booking points at.
type UnitModel string

const (
	ModelCompanyOne UnitModel = "CompanyOneUnit"
	ModelCompanyTwo UnitModel = "CompanyTwoUnit"
)

// BookingClient is the embedded client snapshot on a non-available unit.
type BookingClient struct {
	ClientName    string        `json:"clientName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Booking ties a client to exactly one unit of one company model.
type Booking struct {
	ID            string        `json:"_id"`
	ClientName    string        `json:"clientName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	UnitModel     UnitModel     `json:"unitModel"`
	Unit          string        `json:"unit"`
	Status        UnitStatus    `json:"status"`
	CreatedBy     UserRef       `json:"createdBy,omitzero"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// CompanyOneMeta feeds the filter dropdowns on the company-one pages.
type CompanyOneMeta struct {
	Companies []string `json:"companies"`
	Buildings []string `json:"buildings"`
	Statuses  []string `json:"statuses"`
	Bedrooms  []int    `json:"bedrooms"`
}

// CompanyTwoMeta feeds the filter dropdowns on the company-two pages.
type CompanyTwoMeta struct {
	Buildings    []string `json:"buildings"`
	Statuses     []string `json:"statuses"`
	Orientations []string `json:"orientations"`
	ModelCodes   []string `json:"modelCodes"`
	Floors       []int    `json:"floors"`
}
