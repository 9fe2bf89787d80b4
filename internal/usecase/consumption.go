package usecase

import (
	"fmt"
	"math"

	"gasvision/internal/domain/model"
)

// 注文が無いときの予測値（標準ボンベ13kg）
const DefaultPredictedKg = 13.0

// Consumption は1顧客分の使用量まとめ。
// 予測は過去の注文量の単純平均で、季節性やトレンドは見ない。
type Consumption struct {
	TotalKg         int     `json:"total_consumed_kg"`
	OrderCount      int     `json:"order_count"`
	PredictedNextKg float64 `json:"predicted_next_kg"`
}

func Summarize(orders []model.Order) Consumption {
	total := 0
	for _, o := range orders {
		total += o.AmountKg
	}

	predicted := DefaultPredictedKg
	if len(orders) > 0 {
		predicted = float64(total) / float64(len(orders))
	}

	return Consumption{
		TotalKg:         total,
		OrderCount:      len(orders),
		PredictedNextKg: predicted,
	}
}

// 表示用に小数1桁へ丸める
func (c Consumption) PredictedRounded() float64 {
	return math.Round(c.PredictedNextKg*10) / 10
}

func (c Consumption) PredictedDisplay() string {
	return fmt.Sprintf("%.1f kg", c.PredictedNextKg)
}
