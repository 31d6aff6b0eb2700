package game // import "github.com/tonobo/fingersnake-go/game"

import "errors"

var (
	ErrInvalidPoint     = errors.New("point has non-finite coordinates")
	ErrFoodAssetMissing = errors.New("food sprite not found")
	ErrFoodAssetInvalid = errors.New("food sprite is not a valid png")
)
