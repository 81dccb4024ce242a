// Package vehicle models vehicles and cars by composition.
//
// A Car holds a Vehicle value plus its model name. Fields are unexported and
// set once by the constructors; there are no setters. Descriptions are produced
// by free functions rather than methods:
//
//	car := vehicle.NewCar("Toyota", 2020, "Corolla")
//	vehicle.VehicleInfo(car.Vehicle()) // "Make: Toyota, Year: 2020"
//	vehicle.CarModel(car)              // "Model: Corolla"
package vehicle
