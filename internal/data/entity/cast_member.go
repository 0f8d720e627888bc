package entity

type CastMember struct {
	Base
	Name string `db:"name"`
	Type int16  `db:"type"`
}
