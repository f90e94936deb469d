package api

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/harshithparitala/systolic-array-3x3-matrix/core"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

type stubDevice struct {
	shape systolic.Shape
}

func (d *stubDevice) StimulusPort() sim.Port              { return nil }
func (d *stubDevice) ResultPort() sim.Port                { return nil }
func (d *stubDevice) SetResultRemote(port sim.RemotePort) {}
func (d *stubDevice) Shape() systolic.Shape               { return d.shape }

var _ = Describe("Driver", func() {
	var (
		driver *driverImpl
		a, b   []uint8
	)

	BeforeEach(func() {
		driver = &driverImpl{
			device:      &stubDevice{shape: systolic.Default3x3()},
			portFactory: defaultPortFactory{},
		}
		driver.TickingComponent =
			sim.NewTickingComponent("Driver", nil, 1, driver)

		a = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		b = []uint8{2, 1, 3, 4, 5, 7, 6, 9, 8}
	})

	It("should queue stimulus vectors in order", func() {
		vectors := systolic.ColdStart(a, b)

		Expect(driver.FeedIn(vectors)).To(Succeed())

		Expect(driver.pending).To(HaveLen(3))
		Expect(driver.pending[0].Reset).To(BeTrue())
		Expect(driver.pending[2].Reset).To(BeFalse())
	})

	It("should append batches to the pending queue", func() {
		Expect(driver.FeedIn(systolic.ColdStart(a, b))).To(Succeed())
		Expect(driver.FeedIn([]systolic.Vector{{A: a, B: b}})).To(Succeed())

		Expect(driver.pending).To(HaveLen(4))
	})

	It("should reject a malformed batch as a whole", func() {
		vectors := []systolic.Vector{
			{A: a, B: b},
			{A: a[:8], B: b},
		}

		err := driver.FeedIn(vectors)

		Expect(err).To(HaveOccurred())
		Expect(driver.pending).To(BeEmpty())
	})

	It("should register collect destinations", func() {
		var first, second [][]uint16

		driver.Collect(&first)
		driver.Collect(&second)

		Expect(driver.collects).To(HaveLen(2))
	})
})

var _ = Describe("Driver with a real engine", func() {
	It("should clock stimulus through its connections", func() {
		engine := sim.NewSerialEngine()

		device := core.NewBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Core")
		driver := DriverBuilder{}.
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Driver")
		driver.RegisterCore(device)

		a := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []uint8{2, 1, 3, 4, 5, 7, 6, 9, 8}

		var collected [][]uint16
		driver.Collect(&collected)
		Expect(driver.FeedIn(systolic.ColdStart(a, b))).To(Succeed())

		// The connections the driver builds must carry the clock; a
		// connection without a frequency poisons the engine time on
		// the first delivery.
		driver.Run()

		Expect(collected).To(HaveLen(3))
		Expect(collected[2]).To(Equal([]uint16{
			28, 38, 41,
			64, 83, 95,
			100, 128, 149,
		}))
	})
})
