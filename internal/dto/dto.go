package dto

type TokenResponse struct {
	Token string `json:"token"`
}

type UpsertUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// WriteResult reports a successful insert, mirroring the driver-level
// result shape clients of this API already consume.
type WriteResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type CreateMenuItemRequest struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"recipe"`
	ImageURL    string  `json:"image"`
}

type AddCartItemRequest struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	Status        string   `json:"status"`
	CartIDs       []string `json:"cartId"`
	MenuItemIDs   []string `json:"menuId"`
}

type RecordPaymentResponse struct {
	PaymentResult WriteResult  `json:"paymentResult"`
	DeletedResult DeleteResult `json:"deletedResult"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
