package component

// Phase — фаза сессии
type Phase int

const (
	Playing Phase = iota
	Ended
)

func (p Phase) String() string {
	if p == Ended {
		return "Ended"
	}
	return "Playing"
}

// Outcome — итог завершённой сессии
type Outcome int

const (
	NoOutcome Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	}
	return "None"
}
