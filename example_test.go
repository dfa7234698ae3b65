package meow_test

import (
	"fmt"

	"github.com/zeebo/meow"
)

func ExampleImpl_Sum() {
	impl, err := meow.New(meow.Width128)
	if err != nil {
		panic(err)
	}

	fmt.Println(impl.Sum(meow.Seed64(0), []byte("some data")))
	//output:
	// 932BC75B-90F23D12-13F4315F-1F14EEA4
}

func ExampleNew() {
	buf := make([]byte, 16000)
	for i := range buf {
		buf[i] = byte(i)
	}

	for _, w := range []meow.Width{meow.Width128, meow.Width256, meow.Width512} {
		impl, err := meow.New(w)
		if err != nil {
			panic(err)
		}
		fmt.Println(w, impl.Sum(meow.Seed{}, buf))
	}
	//output:
	// 128-bit 01461F31-44B37202-B0D1D70A-09455BA5
	// 256-bit 1E383CB4-50CBA344-8D6EF2EE-3E454352
	// 512-bit 511E7600-2A5B4DC9-5C847308-9B4D34C6
}

func ExampleParseDigest() {
	d, err := meow.ParseDigest("01461F31-44B37202-B0D1D70A-09455BA5")
	if err != nil {
		panic(err)
	}

	fmt.Printf("%08x\n", d.U32(0))
	fmt.Printf("%016x\n", d.U64(1))
	//output:
	// 09455ba5
	// 01461f3144b37202
}

func ExampleEqual() {
	impl := meow.Select()

	a := impl.Sum(meow.Seed{}, []byte("some data"))
	b := impl.Sum(meow.Seed{}, []byte("some data"))
	c := impl.Sum(meow.Seed64(1), []byte("some data"))

	fmt.Println(meow.Equal(a, b), meow.Equal(a, c))
	//output:
	// true false
}
