package model

type DeliveryTime string

const (
	DeliveryMorning   DeliveryTime = "Morning (8AM-12PM)"
	DeliveryAfternoon DeliveryTime = "Afternoon (12PM-4PM)"
	DeliveryEvening   DeliveryTime = "Evening (4PM-8PM)"
)

// 選択肢の表示順
var DeliveryTimes = []DeliveryTime{
	DeliveryMorning,
	DeliveryAfternoon,
	DeliveryEvening,
}

func (d DeliveryTime) Valid() bool {
	switch d {
	case DeliveryMorning, DeliveryAfternoon, DeliveryEvening:
		return true
	}
	return false
}
