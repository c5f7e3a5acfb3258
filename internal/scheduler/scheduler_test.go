package scheduler_test

import (
	"context"
	"errors"
	"time"
	"walletsync/internal/core"
	"walletsync/internal/repository"
	"walletsync/internal/scheduler"
	"walletsync/internal/scheduler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		fakeJobs       *fake.JobStore
		fakePropagator *fake.StatusPropagator
		fakeLogger     *zap.SugaredLogger
		ctx            context.Context

		sched *scheduler.Scheduler

		now     time.Time
		fakeErr error
	)

	BeforeEach(func() {
		fakeJobs = new(fake.JobStore)
		fakePropagator = new(fake.StatusPropagator)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		sched = scheduler.NewScheduler(fakeLogger, fakeJobs, fakePropagator, time.Second)

		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		scheduler.TimeNow = func() time.Time { return now }

		fakeErr = errors.New("fake error")
	})

	AfterEach(func() {
		scheduler.TimeNow = time.Now
	})

	Describe("ProcessDue", func() {
		JustBeforeEach(func() {
			sched.ProcessDue(ctx)
		})

		When("a job is due", func() {
			BeforeEach(func() {
				fakeJobs.DueStatusUpdatesReturns([]repository.StatusUpdate{
					{ID: 7, Hash: "0xabc1", OwningWallet: "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
						Status: core.StatusConfirmed, Confirmations: 12},
				}, nil)
			})

			It("should propagate the status and delete the fired job", func() {
				Expect(fakeJobs.DueStatusUpdatesCallCount()).To(Equal(1))
				_, argNow := fakeJobs.DueStatusUpdatesArgsForCall(0)
				Expect(argNow).To(Equal(now.UnixMilli()))

				Expect(fakePropagator.PropagateStatusCallCount()).To(Equal(1))
				_, argWallet, argHash, argStatus, argConf := fakePropagator.PropagateStatusArgsForCall(0)
				Expect(argWallet).To(Equal("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"))
				Expect(argHash).To(Equal("0xabc1"))
				Expect(argStatus).To(Equal(core.StatusConfirmed))
				Expect(*argConf).To(Equal(12))

				Expect(fakeJobs.DeleteStatusUpdateCallCount()).To(Equal(1))
				_, argID := fakeJobs.DeleteStatusUpdateArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("propagation fails transiently", func() {
			BeforeEach(func() {
				fakeJobs.DueStatusUpdatesReturns([]repository.StatusUpdate{
					{ID: 7, Hash: "0xabc1"},
				}, nil)
				fakePropagator.PropagateStatusReturns(fakeErr)
			})

			It("should keep the job for the next tick", func() {
				Expect(fakeJobs.DeleteStatusUpdateCallCount()).To(Equal(0))
			})
		})

		When("the transfer no longer exists", func() {
			BeforeEach(func() {
				fakeJobs.DueStatusUpdatesReturns([]repository.StatusUpdate{
					{ID: 7, Hash: "0xabc1"},
				}, nil)
				fakePropagator.PropagateStatusReturns(core.ErrTransferNotFound)
			})

			It("should drop the job", func() {
				Expect(fakeJobs.DeleteStatusUpdateCallCount()).To(Equal(1))
			})
		})

		When("loading due jobs fails", func() {
			BeforeEach(func() {
				fakeJobs.DueStatusUpdatesReturns(nil, fakeErr)
			})

			It("should not propagate anything", func() {
				Expect(fakePropagator.PropagateStatusCallCount()).To(Equal(0))
			})
		})

		When("several jobs are due", func() {
			BeforeEach(func() {
				fakeJobs.DueStatusUpdatesReturns([]repository.StatusUpdate{
					{ID: 1, Hash: "0xabc1"},
					{ID: 2, Hash: "0xabc2"},
				}, nil)
				fakePropagator.PropagateStatusReturnsOnCall(0, fakeErr)
			})

			It("should process the remaining jobs after a failure", func() {
				Expect(fakePropagator.PropagateStatusCallCount()).To(Equal(2))
				Expect(fakeJobs.DeleteStatusUpdateCallCount()).To(Equal(1))
				_, argID := fakeJobs.DeleteStatusUpdateArgsForCall(0)
				Expect(argID).To(Equal(uint(2)))
			})
		})
	})

	Describe("Run", func() {
		It("should stop when the context is cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)

			done := make(chan struct{})
			go func() {
				sched.Run(runCtx)
				close(done)
			}()

			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
