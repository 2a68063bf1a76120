// internal/domain/plan/dto.go
package plan

type CreatePlanRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Price        float64  `json:"price" binding:"required,min=0"`
	CurrencyType string   `json:"currency_type" binding:"required,len=3"`
	Duration     Duration `json:"duration" binding:"required,oneof=monthly annual quarter semester biweekly"`
	OrderLimit   int      `json:"order_limit" binding:"min=0"`
	Features     Features `json:"features" binding:"required"`
	Status       Status   `json:"status" binding:"omitempty,oneof=active inactive"`
	Description  string   `json:"description"`
}

type UpdatePlanRequest struct {
	Name         *string   `json:"name" binding:"omitempty,max=255"`
	Price        *float64  `json:"price" binding:"omitempty,min=0"`
	CurrencyType *string   `json:"currency_type" binding:"omitempty,len=3"`
	Duration     *Duration `json:"duration" binding:"omitempty,oneof=monthly annual quarter semester biweekly"`
	OrderLimit   *int      `json:"order_limit" binding:"omitempty,min=0"`
	Features     *Features `json:"features"`
	Status       *Status   `json:"status" binding:"omitempty,oneof=active inactive"`
	Description  *string   `json:"description"`
}

type DeleteManyPlansRequest struct {
	PlanIDs []string `json:"planIds" binding:"required,min=1"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
