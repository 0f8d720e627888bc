package request

type CastMemberRequest struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
	Type int    `json:"type" validate:"required,oneof=1 2"`
}
