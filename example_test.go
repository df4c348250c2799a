package mockup_test

import (
	"fmt"

	"gopkg.in/inf.v0"

	mockup "github.com/developerRafu/easy-mockup"
	"github.com/developerRafu/easy-mockup/model"
)

func ExampleMake() {
	person, err := mockup.Make[model.Person]()

	fmt.Println(err)
	fmt.Println(person.Name(), person.Age(), person.Salary())
	fmt.Println(person.Job().Title(), person.Job().Salary())
	// Output:
	// <nil>
	// string 0 0.0
	// string 0.0
}

func ExampleMakeWith() {
	person, err := mockup.MakeWith[model.Person](map[string]any{
		"name":       "Test",
		"age":        42,
		"job.salary": inf.NewDec(100000, 2),
	})

	fmt.Println(err)
	fmt.Println(person.Name(), person.Age())
	fmt.Println(person.Job().Salary())
	// Output:
	// <nil>
	// Test 42
	// 1000.00
}

func ExampleFailKindEnum_String() {
	fmt.Println(mockup.FailConstruction, mockup.FailPopulation, mockup.FailRecursion, mockup.FailCycle)
	// Output:
	// construction population recursion cycle
}
