package rider

import "github.com/DioGolang/GoRider/internal/domain/entity"

type UpdateInput struct {
	ID    int64
	Rider entity.RiderInput
}
