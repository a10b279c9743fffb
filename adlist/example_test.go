package adlist_test

import (
	"fmt"

	"github.com/pengdafu/adlist-golang/adlist"
)

func ExampleList() {
	l := adlist.Create[string]()
	l.AddNodeTail("a").AddNodeTail("b").AddNodeTail("c")
	l.Rotate()

	iter := l.GetIterator(adlist.StartHead)
	defer iter.Release()
	for node := iter.Next(); node != nil; node = iter.Next() {
		fmt.Println(node.NodeValue())
	}
	fmt.Println(l.Index(-1).NodeValue(), l.Len())
	// Output:
	// c
	// a
	// b
	// b 3
}

type replyBlock struct {
	buf  []byte
	used int
}

// A client output buffer: reply chunks are appended at the tail and
// written out from the head, deleting every chunk once it is flushed.
func ExampleList_replyBuffer() {
	reply := adlist.CreateWithType(&adlist.Type[*replyBlock]{
		Dup: func(b *replyBlock) (*replyBlock, error) {
			buf := make([]byte, len(b.buf))
			copy(buf, b.buf)
			return &replyBlock{buf: buf, used: b.used}, nil
		},
		Free: func(b *replyBlock) {
			fmt.Printf("free %d bytes\n", b.used)
		},
	})

	for _, s := range []string{"+OK\r\n", ":1\r\n", "$3\r\nfoo\r\n"} {
		reply.AddNodeTail(&replyBlock{buf: []byte(s), used: len(s)})
	}

	for reply.Len() > 0 {
		b := reply.First().NodeValue()
		fmt.Printf("write %q\n", b.buf[:b.used])
		reply.DelNode(reply.First())
	}
	// Output:
	// write "+OK\r\n"
	// free 5 bytes
	// write ":1\r\n"
	// free 4 bytes
	// write "$3\r\nfoo\r\n"
	// free 9 bytes
}

func ExampleList_Join() {
	pending := adlist.Create[int]().AddNodeTail(1).AddNodeTail(2)
	ready := adlist.Create[int]().AddNodeTail(3)

	pending.Join(ready)
	fmt.Println(pending.Len(), ready.Len())

	for node := pending.First(); node != nil; node = node.Next() {
		fmt.Print(node.NodeValue(), " ")
	}
	fmt.Println()
	// Output:
	// 3 0
	// 1 2 3
}

func ExampleList_SearchKey() {
	l := adlist.CreateWithType(adlist.StringCaseType())
	l.AddNodeTail("news.*").AddNodeTail("sport.*")

	fmt.Println(l.SearchKey("SPORT.*") == l.Last())
	fmt.Println(l.SearchKey("weather") == nil)
	// Output:
	// true
	// true
}
