package db_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sqlapp/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

type Widget struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;not null"`
	OwnerID *uint
}

var _ = Describe("Postgres dialect", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("LockOwnership", func() {
		When("the lock is granted", func() {
			BeforeEach(func() {
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
					WithArgs(sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			})

			It("should take the advisory lock", func() {
				Expect(testDB.LockOwnership(ctx)).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the lock query fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
					WithArgs(sqlmock.AnyArg()).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				err := testDB.LockOwnership(ctx)
				Expect(err).To(MatchError(ContainSubstring("acquire ownership lock")))
				Expect(err).To(MatchError(sql.ErrConnDone))
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
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
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
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Aggregate", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT MIN\(id\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(1).AddRow(2))
		})

		It("should return every row the database produced", func() {
			values, err := testDB.Aggregate(ctx, &Test{}, "MIN(id)", db.Query{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(HaveLen(2))
			Expect(values[0].Int64).To(Equal(int64(1)))
			Expect(values[1].Int64).To(Equal(int64(2)))
		})
	})

	Describe("Insert", func() {
		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "tests"`).
					WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_tests_username" (SQLSTATE 23505)`))
				mock.ExpectRollback()
			})

			It("should return ErrDuplicateKey", func() {
				err := testDB.Insert(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicateKey))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateColumn", func() {
		It("should refuse an unconditional update", func() {
			_, err := testDB.UpdateColumn(ctx, &Test{}, "username", "x", db.Query{})
			Expect(err).To(MatchError(ContainSubstring("refusing to update")))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})

var _ = Describe("Sqlite dialect", func() {
	var (
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		dsn := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
		testDB, err = db.NewGormDB(dsn, logger.Discard)
		Expect(err).NotTo(HaveOccurred())
		Expect(testDB.MigrateModels(&Widget{})).To(Succeed())
		DeferCleanup(testDB.Close)
	})

	It("should report the sqlite dialect and skip the advisory lock", func() {
		Expect(testDB.Dialect()).To(Equal("sqlite"))
		Expect(testDB.LockOwnership(ctx)).To(Succeed())
	})

	It("should reject unsupported database urls", func() {
		_, err := db.NewGormDB("mysql://localhost/app", logger.Discard)
		Expect(err).To(MatchError(db.ErrUnsupported))
	})

	Describe("Insert", func() {
		It("should assign monotonic ids", func() {
			first, second := Widget{Name: "a"}, Widget{Name: "b"}
			Expect(testDB.Insert(ctx, &first)).To(Succeed())
			Expect(testDB.Insert(ctx, &second)).To(Succeed())
			Expect(second.ID).To(BeNumerically(">", first.ID))
		})

		It("should map unique violations to ErrDuplicateKey", func() {
			Expect(testDB.Insert(ctx, &Widget{Name: "a"})).To(Succeed())
			err := testDB.Insert(ctx, &Widget{Name: "a"})
			Expect(err).To(MatchError(db.ErrDuplicateKey))
		})
	})

	Describe("WithTx", func() {
		It("should roll back when fn fails", func() {
			fakeErr := errors.New("fake error")
			err := testDB.WithTx(ctx, func(tx *db.GormDB) error {
				Expect(tx.Insert(ctx, &Widget{Name: "rolled back"})).To(Succeed())
				return fakeErr
			})
			Expect(err).To(MatchError(fakeErr))

			exists, err := testDB.Exists(ctx, &Widget{}, db.Query{Where: "name = ?", Args: []any{"rolled back"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("should commit when fn succeeds", func() {
			err := testDB.WithTx(ctx, func(tx *db.GormDB) error {
				return tx.Insert(ctx, &Widget{Name: "kept"})
			})
			Expect(err).NotTo(HaveOccurred())

			var w Widget
			Expect(testDB.GetOneBy(ctx, "name", "kept", &w)).To(Succeed())
			Expect(w.Name).To(Equal("kept"))
		})
	})

	Describe("Aggregate", func() {
		It("should yield a single NULL row on an empty table", func() {
			values, err := testDB.Aggregate(ctx, &Widget{}, "MIN(id)", db.Query{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(HaveLen(1))
			Expect(values[0].Valid).To(BeFalse())
		})

		It("should yield the minimum matching id", func() {
			for _, name := range []string{"a", "b", "c"} {
				Expect(testDB.Insert(ctx, &Widget{Name: name})).To(Succeed())
			}
			values, err := testDB.Aggregate(ctx, &Widget{}, "MIN(id)", db.Query{Where: "name <> ?", Args: []any{"a"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(HaveLen(1))
			Expect(values[0].Int64).To(Equal(int64(2)))
		})
	})

	Describe("GetAll and UpdateColumn", func() {
		BeforeEach(func() {
			owner := uint(7)
			for _, name := range []string{"a", "b", "c", "d"} {
				Expect(testDB.Insert(ctx, &Widget{Name: name, OwnerID: &owner})).To(Succeed())
			}
		})

		It("should page over the ordered rows", func() {
			var widgets []Widget
			err := testDB.GetAll(ctx, db.Query{Order: "id", Page: &db.Page{Offset: 1, Limit: 2}}, &widgets)
			Expect(err).NotTo(HaveOccurred())
			Expect(widgets).To(HaveLen(2))
			Expect(widgets[0].Name).To(Equal("b"))
			Expect(widgets[1].Name).To(Equal("c"))
		})

		It("should return nothing when the offset is past the end", func() {
			var widgets []Widget
			err := testDB.GetAll(ctx, db.Query{Order: "id", Page: &db.Page{Offset: 10, Limit: 2}}, &widgets)
			Expect(err).NotTo(HaveOccurred())
			Expect(widgets).To(BeEmpty())
		})

		It("should store NULL for a nil value", func() {
			n, err := testDB.UpdateColumn(ctx, &Widget{}, "owner_id", nil, db.Query{Where: "name IN ?", Args: []any{[]string{"a", "b"}}})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))

			var ids []uint
			Expect(testDB.Pluck(ctx, &Widget{}, "id", db.Query{Where: "owner_id IS NULL", Order: "id"}, &ids)).To(Succeed())
			Expect(ids).To(Equal([]uint{1, 2}))
		})
	})
})
