// internal/domain/offer/dto.go
package offer

type CreateOfferRequest struct {
	OfferName         string             `json:"offer_name" binding:"required,max=255"`
	Description       string             `json:"description"`
	Discount          *Discount          `json:"discount"`
	ExtraDurationPlan *ExtraDurationPlan `json:"extra_duration_plan"`
	Status            Status             `json:"status" binding:"required,oneof=active inactive"`
}

type UpdateOfferRequest struct {
	OfferName         *string            `json:"offer_name" binding:"omitempty,max=255"`
	Description       *string            `json:"description"`
	Discount          *Discount          `json:"discount"`
	ExtraDurationPlan *ExtraDurationPlan `json:"extra_duration_plan"`
	Status            *Status            `json:"status" binding:"omitempty,oneof=active inactive"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
