package repository_test

import (
	"context"
	"errors"
	"time"
	"walletrisk/internal/db"
	"walletrisk/internal/repository"
	"walletrisk/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RunRepository", func() {
	var (
		repo        *repository.RunRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewRunRepository(fakeStorage)
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var (
			err   error
			users []repository.User
		)

		BeforeEach(func() {
			users = []repository.User{{ID: uuid.NewString(), Username: "admin", PasswordHash: "hash"}}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, users)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Run{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.User{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				Expect(records).To(Equal(&users))
			})
		})

		When("there are no users to seed", func() {
			BeforeEach(func() {
				users = nil
			})

			It("should only migrate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("seed database")))
			})
		})
	})

	Describe("SaveRun", func() {
		var bundle repository.RunBundle

		BeforeEach(func() {
			bundle = repository.RunBundle{
				Run:          repository.Run{ID: "run-1", CreatedAt: time.Now()},
				Transactions: []repository.Transaction{{RunID: "run-1", Wallet: "W1"}},
				Scores:       []repository.RiskScore{{RunID: "run-1", Rank: 1, Wallet: "W1"}},
				Details:      []repository.ScoreDetail{{RunID: "run-1", Wallet: "W1"}},
			}
		})

		It("should write the run before its rows in one call", func() {
			Expect(repo.SaveRun(ctx, bundle)).To(Succeed())
			Expect(fakeStorage.SaveInTransactionCallCount()).To(Equal(1))

			_, batches := fakeStorage.SaveInTransactionArgsForCall(0)
			Expect(batches).To(HaveLen(4))
			Expect(batches[0]).To(Equal(&[]repository.Run{bundle.Run}))
			Expect(batches[1]).To(Equal(&bundle.Transactions))
			Expect(batches[3]).To(Equal(&bundle.Details))
		})

		It("should wrap storage errors with the run id", func() {
			fakeStorage.SaveInTransactionReturns(fakeErr)
			err := repo.SaveRun(ctx, bundle)
			Expect(err).To(MatchError(fakeErr))
			Expect(err.Error()).To(ContainSubstring("run-1"))
		})
	})

	Describe("GetLatestRun", func() {
		It("should order by creation time", func() {
			fakeStorage.GetOneByStub = func(_ context.Context, _ map[string]any, _ string, entity any) error {
				*entity.(*repository.Run) = repository.Run{ID: "run-9"}
				return nil
			}

			run, err := repo.GetLatestRun(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(run.ID).To(Equal("run-9"))

			_, conds, order, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(conds).To(BeEmpty())
			Expect(order).To(Equal("created_at desc"))
		})

		It("should map a missing row to ErrRunNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetLatestRun(ctx)
			Expect(err).To(Equal(repository.ErrRunNotFound))
		})

		It("should wrap other errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)
			_, err := repo.GetLatestRun(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("reading run rows", func() {
		It("should fetch scores by rank", func() {
			_, err := repo.GetScores(ctx, "run-1")
			Expect(err).NotTo(HaveOccurred())

			_, conds, order, entity := fakeStorage.GetAllByArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"run_id": "run-1"}))
			Expect(order).To(Equal("rank asc"))
			Expect(entity).To(BeAssignableToTypeOf(&[]repository.RiskScore{}))
		})

		It("should fetch a wallet's details in audit order", func() {
			fakeStorage.GetAllByStub = func(_ context.Context, _ map[string]any, _ string, entity any) error {
				*entity.(*[]repository.ScoreDetail) = []repository.ScoreDetail{{Seq: 0}, {Seq: 1}}
				return nil
			}

			details, err := repo.GetDetails(ctx, "run-1", "W1")
			Expect(err).NotTo(HaveOccurred())
			Expect(details).To(HaveLen(2))

			_, conds, order, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"run_id": "run-1", "wallet": "W1"}))
			Expect(order).To(Equal("seq asc"))
		})

		It("should fetch a wallet's transactions", func() {
			fakeStorage.GetAllByReturns(fakeErr)
			_, err := repo.GetTransactions(ctx, "run-1", "W1")
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("GetUserFromDB", func() {
		It("should look the user up by name", func() {
			_, err := repo.GetUserFromDB(ctx, "admin")
			Expect(err).NotTo(HaveOccurred())

			_, conds, _, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"username": "admin"}))
		})

		It("should map a missing row to ErrUserNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetUserFromDB(ctx, "ghost")
			Expect(err).To(Equal(repository.ErrUserNotFound))
		})
	})
})
