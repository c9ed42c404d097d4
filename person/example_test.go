package person_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Gobd/validated/person"
)

func ExampleValidate() {
	dir := person.NewInMemory(nil)

	v := person.Validate(dir, person.Form{FirstName: "Jan", LastName: "Bols", Email: "bad-email", Age: "150"})
	for _, msg := range v.Fail() {
		fmt.Println(msg)
	}
	// Output:
	// email: should contain @
	// age: must be between 0 and 100
}

func ExampleDecode() {
	dir := person.NewInMemory(map[int64]person.Name{1: {First: "Ada", Last: "Lovelace"}})

	p, err := person.Decode(strings.NewReader(`{"firstName":"Jan","lastName":"Bols","email":"jan@bols.be"}`), dir)
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := json.Marshal(p)
	fmt.Println(string(b))
	// Output: {"name":{"first":"Jan","last":"Bols"},"email":"jan@bols.be","age":null}
}
