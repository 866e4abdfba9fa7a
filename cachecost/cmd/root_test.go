package cmd

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cachecost/estimation"
)

var _ = Describe("Run", func() {
	var (
		mockCtrl  *gomock.Controller
		estimator *MockEstimator
		reporter  *MockReporter
		params    estimation.Params
		metrics   estimation.Metrics
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		estimator = NewMockEstimator(mockCtrl)
		reporter = NewMockReporter(mockCtrl)

		params = estimation.MakeBuilder().WithCacheSize(64).Build()
		metrics = estimation.Metrics{TotalGates: 1, WriteDelay: 2}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should estimate once and report the result", func() {
		gomock.InOrder(
			estimator.EXPECT().Estimate(params).Return(metrics),
			reporter.EXPECT().Report(metrics).Return(nil),
		)

		err := Run(estimator, reporter, params)

		Expect(err).NotTo(HaveOccurred())
	})

	It("should return the reporter's error", func() {
		reportErr := errors.New("stdout closed")
		estimator.EXPECT().Estimate(params).Return(metrics)
		reporter.EXPECT().Report(metrics).Return(reportErr)

		err := Run(estimator, reporter, params)

		Expect(err).To(MatchError(reportErr))
	})
})

var _ = Describe("Root command", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	execute := func(args ...string) error {
		rootCmd := newRootCmd()
		rootCmd.SetOut(out)
		rootCmd.SetErr(new(bytes.Buffer))
		rootCmd.SetArgs(args)

		return rootCmd.Execute()
	}

	It("should report the example cache by default", func() {
		err := execute()

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal(
			"Cache Metrics:\n" +
				"total_gates: 3328\n" +
				"read_hit_delay: 17\n" +
				"read_miss_delay: 50\n" +
				"write_delay: 12\n"))
	})

	It("should use the parameters given by flags", func() {
		err := execute(
			"--data-width", "32",
			"--tag-width", "8",
			"--cache-size", "4",
			"--mem-access-delay", "120.5",
			"--single-gate-delay", "0.5",
		)

		Expect(err).NotTo(HaveOccurred())
		// 32*4*6 + 8*4*6 + 4*6 + 8*4 + 32*6
		Expect(out.String()).To(Equal(
			"Cache Metrics:\n" +
				"total_gates: 1208\n" +
				"read_hit_delay: 4.5\n" +
				"read_miss_delay: 120.5\n" +
				"write_delay: 6\n"))
	})

	It("should reject positional arguments", func() {
		err := execute("extra")

		Expect(err).To(HaveOccurred())
		Expect(out.String()).To(BeEmpty())
	})

	It("should reject malformed flag values", func() {
		err := execute("--cache-size", "many")

		Expect(err).To(HaveOccurred())
	})
})
