package dto

type AssignInput struct {
	NetSeconds float64
}

type FlowerOutput struct {
	Name string
	Art  string
}

type SampleOutput struct {
	Label  string
	Flower FlowerOutput
}
