package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder статическая конфигурация squirrel для PostgreSQL ($1, $2, ... placeholders)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with PostgreSQL placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert creates an INSERT builder with PostgreSQL placeholders
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update creates an UPDATE builder with PostgreSQL placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete creates a DELETE builder with PostgreSQL placeholders
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
