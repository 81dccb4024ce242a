// Package calendar classifies days of the week.
//
// Day is a closed enumeration, Monday (0) through Sunday (6). GetDayType maps
// Saturday and Sunday to Weekend and every other day to Weekday. Ordinals
// outside the enumeration are not validated.
package calendar
