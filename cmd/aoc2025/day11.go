package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/reactor"
)

func (s solver) devices() *aoc.Graph[string] {
	return aoc.MustGet(reactor.Parse(s.Lines()))
}

/*
want=5

aaa: you hhh
you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
hhh: ccc fff iii
iii: out
*/
func (s solver) D11p1() any {
	return aoc.MustGet(reactor.Part1(s.devices()))
}

/*
want=2

svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
*/
func (s solver) D11p2() any {
	return aoc.MustGet(reactor.Part2(s.devices()))
}
