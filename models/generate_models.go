package models

import (
	"fmt"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// GenerateQueryHelpers emits typed gorm query builders for the persisted
// tables into database/query. Run with GENERATE_MODELS=true; the generated
// code is checked in alongside the hand-written repositories.
func GenerateQueryHelpers(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./database/query",
		Mode:          gen.WithDefaultQuery,
		FieldNullable: true,
	})

	g.UseDB(db)
	g.ApplyBasic(BlogPost{}, BlogStatus{}, Image{})
	g.Execute()

	fmt.Println("Query helpers generated under database/query")
}
