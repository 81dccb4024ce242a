package vehicle

import "fmt"

// Vehicle is a make and a model year.
type Vehicle struct {
	make string
	year int
}

// NewVehicle creates a vehicle.
func NewVehicle(mk string, year int) Vehicle {
	return Vehicle{make: mk, year: year}
}

// Car is a vehicle with a model name.
type Car struct {
	vehicle Vehicle
	model   string
}

// NewCar creates a car whose vehicle part is built from mk and year.
func NewCar(mk string, year int, model string) Car {
	return Car{vehicle: NewVehicle(mk, year), model: model}
}

// Vehicle returns the vehicle part of the car.
func (c Car) Vehicle() Vehicle {
	return c.vehicle
}

// VehicleInfo describes a vehicle as "Make: <make>, Year: <year>".
func VehicleInfo(v Vehicle) string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.year)
}

// CarModel describes a car's model as "Model: <model>".
func CarModel(c Car) string {
	return "Model: " + c.model
}
