package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const bestStatsTableName = "best_stats"

var (
	// BestStatsColumns holds the columns for the "best_stats" table.
	BestStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "difficulty", Type: field.TypeString, Unique: true},
		{Name: "streak", Type: field.TypeUint32},
		{Name: "correct", Type: field.TypeUint32},
		{Name: "total", Type: field.TypeUint32},
		{Name: "avg_ms", Type: field.TypeUint32},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BestStatsTable holds the schema information for the "best_stats" table.
	BestStatsTable = &schema.Table{
		Name:       bestStatsTableName,
		Columns:    BestStatsColumns,
		PrimaryKey: []*schema.Column{BestStatsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BestStatsTable,
	}
)
