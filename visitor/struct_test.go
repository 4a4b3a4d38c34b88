package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xconv/introspect"
)

func TestStructVisitorOf(t *testing.T) {

	type Employee struct {
		ID      int
		Name    string `json:"name"`
		Company string
		salary  int
	}

	emp := &Employee{ID: 1, Name: "John Doe", Company: "Viant", salary: 10}

	for _, source := range []interface{}{emp, *emp} {
		visit, err := StructVisitorOf(source, introspect.New())
		if !assert.Nil(t, err) {
			return
		}
		var clone = &Employee{}
		err = visit(func(key string, value interface{}) (bool, error) {
			switch key {
			case "ID":
				clone.ID = value.(int)
			case "Name":
				clone.Name = value.(string)
			case "Company":
				clone.Company = value.(string)
			case "salary":
				clone.salary = value.(int)
			}
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, &Employee{ID: 1, Name: "John Doe", Company: "Viant"}, clone)
	}

	_, err := StructVisitorOf(map[string]int{}, introspect.New())
	assert.NotNil(t, err)
}
