package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/nlsql/pkg/parser"
)

func TestCondition(t *testing.T) {
	tests := []struct {
		cond parser.Condition
		want string
	}{
		{parser.Condition{Attribute: "edad", Operator: ">", Value: "30"}, "edad > 30"},
		{parser.Condition{Attribute: "precio", Operator: "<=", Value: "9.99"}, "precio <= 9.99"},
		{parser.Condition{Attribute: "nombre", Operator: "=", Value: "Lucia"}, "nombre = 'Lucia'"},
		{parser.Condition{Attribute: "nombre", Operator: "=", Value: "o'brien"}, "nombre = 'o''brien'"},
		{parser.Condition{Attribute: "ip", Operator: "=", Value: "1.2.3"}, "ip = '1.2.3'"},
		{parser.Condition{Attribute: "saldo", Operator: ">", Value: "-5"}, "saldo > '-5'"},
		{parser.Condition{Attribute: "fecha", Operator: "=", Value: "21 de julio de 2025"}, "fecha = DATE('2025-07-21')"},
		{parser.Condition{Attribute: "fecha", Operator: "=", Value: "1 de setiembre de 2024"}, "fecha = DATE('2024-09-01')"},
		{parser.Condition{Attribute: "fecha", Operator: "=", Value: "31 de febrero de 2025"}, "fecha = DATE('31 de febrero de 2025')"},
		{parser.Condition{Attribute: "fecha", Operator: "=", Value: "5 de brumario de 2025"}, "fecha = DATE('5 de brumario de 2025')"},
		{parser.Condition{Attribute: "fecha", Operator: "=", Value: "2025-07-21"}, "fecha = '2025-07-21'"},
		{parser.Condition{Attribute: "alta", Operator: "=", Value: "21 de julio de 2025"}, "alta = '21 de julio de 2025'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Condition(tt.cond))
	}
}

func TestGenerate(t *testing.T) {
	q := parser.Query{
		Entity: "clientes",
		Conditions: []parser.Condition{
			{Attribute: "edad", Operator: ">", Value: "30"},
		},
	}
	sql, err := Generate(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM clientes WHERE edad > 30", sql)

	q.Attributes = []string{"nombre", "edad"}
	q.Conditions = append(q.Conditions, parser.Condition{Attribute: "nombre", Operator: "!=", Value: "pedro"})
	sql, err = Generate(q)
	require.NoError(t, err)
	assert.Equal(t, "SELECT nombre, edad FROM clientes WHERE edad > 30 AND nombre != 'pedro'", sql)

	q.Conditions = nil
	assert.Equal(t, "SELECT nombre, edad FROM clientes", Render(q))
}

func TestGenerate_MissingEntity(t *testing.T) {
	sql, err := Generate(parser.Query{Conditions: []parser.Condition{{Attribute: "a", Operator: "=", Value: "1"}}})
	assert.ErrorIs(t, err, ErrMissingEntity)
	assert.Equal(t, MissingEntity, sql)
}

func TestGenerate_Idempotent(t *testing.T) {
	q := parser.Query{
		Entity:     "ventas",
		Attributes: []string{"precio"},
		Conditions: []parser.Condition{
			{Attribute: "fecha", Operator: "=", Value: "21 de julio de 2025"},
			{Attribute: "dept", Operator: "=", Value: "sistemas"},
		},
	}
	assert.Equal(t, Render(q), Render(q))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("30"))
	assert.True(t, IsNumber("3.5"))
	assert.True(t, IsNumber(".5"))
	assert.False(t, IsNumber("."))
	assert.False(t, IsNumber(""))
	assert.False(t, IsNumber("3.5.1"))
	assert.False(t, IsNumber("treinta"))
}
