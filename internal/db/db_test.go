package db_test

import (
	"context"
	"database/sql"
	"walletsync/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
				WithArgs("Alice", 1, "Bob", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

			mock.ExpectCommit()
		})

		It("should save records without errors", func() {
			err := testDB.SaveToTable(context.Background(), &[]Test{
				{ID: 1, Username: "Alice"},
				{ID: 2, Username: "Bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Seed", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT count\(\*\) FROM "tests"$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should insert the seed records", func() {
				err := testDB.Seed(context.Background(), &[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT count\(\*\) FROM "tests"$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should skip seeding", func() {
				err := testDB.Seed(context.Background(), &[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("records is not a pointer to a slice", func() {
			It("should return an error", func() {
				err := testDB.Seed(context.Background(), Test{ID: 1})
				Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneWhere", func() {
		When("a record matches the compound condition", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE \(?id = \$1 AND username = \$2\)? ORDER BY "tests"\."id" LIMIT \$3.*`).
					WithArgs(1, "Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the record", func() {
				var result Test
				err := testDB.GetOneWhere(context.Background(), &result, "id = ? AND username = ?", 1, "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneWhere(context.Background(), &result, "username = ?", "Ghost")
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllWhere", func() {
		When("ordering and paging are set", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id DESC LIMIT \$2 OFFSET \$3`).
					WithArgs("Alice", 2, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(3, "Alice").
						AddRow(2, "Alice"))
			})

			It("should apply order, limit and offset", func() {
				var results []Test
				err := testDB.GetAllWhere(context.Background(), &results, "id DESC", 2, 1, "username = ?", "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(3)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("limit and offset are zero", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the full result set", func() {
				var results []Test
				err := testDB.GetAllWhere(context.Background(), &results, "", 0, 0, "username = ?", "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		When("rows match", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE id = \$2$`).
					WithArgs("Bobby", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report the affected row count", func() {
				affected, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Bobby"}, "id = ?", 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no rows match", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE id = \$2$`).
					WithArgs("Bobby", 404).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero affected rows without error", func() {
				affected, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Bobby"}, "id = ?", 404)
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
				WithArgs(1).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete the matching rows", func() {
			err := testDB.DeleteWhere(context.Background(), &Test{}, "id = ?", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
