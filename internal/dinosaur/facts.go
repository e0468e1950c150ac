package dinosaur

import (
	"math/rand"

	"github.com/elliotchance/orderedmap/v2"
)

// funFacts maps a dinosaur name to its fun fact. Built once in init and
// read-only afterwards.
var funFacts = orderedmap.NewOrderedMap[string, string]()

func init() {
	for _, f := range []struct{ name, fact string }{
		{"Allosaurus", "Did you know that Allosaurus had a strong bite force and serrated teeth, making it a formidable predator in the Late Jurassic?"},
		{"Apatosaurus", "Did you know that Apatosaurus, despite its massive size, had a relatively small head? Its long neck and tail balanced out its body."},
		{"Brachiosaurus", "Did you know that Brachiosaurus had an elongated neck that allowed it to feed on vegetation high above the ground, much like a giraffe?"},
		{"Compsognathus", "Did you know that Compsognathus was one of the smallest known dinosaurs, about the size of a chicken, but it was a swift and agile predator?"},
		{"Dracorex", "Did you know that Dracorex, with its dragon-like name, was discovered with a skull that resembled a mythical dragon, featuring spikes and bumps?"},
		{"Elasmosaurus", "Did you know that Elasmosaurus was a marine reptile with an extremely long neck, accounting for more than half of its total length?"},
		{"Giraffatitan", "Did you know that Giraffatitan was closely related to Brachiosaurus and had a similar structure, with an elevated posture and long neck?"},
		{"Indosuchus", "Did you know that Indosuchus had a crested skull and was a theropod dinosaur, likely resembling a mix of a bird and a fearsome predator?"},
		{"Jingshanosaurus", "Did you know that Jingshanosaurus was a small herbivorous dinosaur with a long neck and bipedal stance, roaming the Early Cretaceous landscape?"},
		{"Khaan", "Did you know that Khaan was a small, feathered dinosaur belonging to the oviraptorosaur group, known for its bird-like features?"},
		{"Minmi", "Did you know that Minmi was a small, armored dinosaur with bony plates on its back, providing protection against potential predators?"},
		{"Ouranosaurus", "Did you know that Ouranosaurus had a sail-like structure on its back, possibly used for temperature regulation or display during the Early Cretaceous?"},
		{"Parasaurolophus", "Did you know that Parasaurolophus had a distinctive crest on its head, which may have been used for communication through unique sounds?"},
		{"Spinosaurus", "Did you know that Spinosaurus was a semi-aquatic dinosaur with adaptations for swimming, including a long crocodile-like snout?"},
		{"Tyrannosaurus", "Did you know that Tyrannosaurus rex, or T. rex, had one of the strongest bites of any land animal, capable of crushing bone with its powerful jaws?"},
		{"Utahraptor", "Did you know that Utahraptor was a feathered dinosaur and a close relative of Velociraptor, showcasing the early evolution of feathers in theropods?"},
		{"Vulcanodon", "Did you know that Vulcanodon was an early sauropod dinosaur with a long neck and tail, representing the herbivorous giants of the Early Jurassic?"},
		{"Xenoceratops", "Did you know that Xenoceratops had a frill and horns on its head, making it one of the unique ceratopsians from the Late Cretaceous?"},
		{"Zephyrosaurus", "Did you know that Zephyrosaurus was a small, bipedal dinosaur with a long tail, likely darting around in the Late Cretaceous landscape?"},
	} {
		funFacts.Set(f.name, f.fact)
	}
}

// FunFact returns the fun fact for an exact dinosaur name.
// ok is false when the name has no entry; callers must handle that case.
func FunFact(name string) (string, bool) {
	return funFacts.Get(name)
}

// FactNames returns the names that have a fun fact, in table order.
func FactNames() []string {
	return funFacts.Keys()
}

// Random picks one record uniformly at random. intn must return a value in
// [0, n); nil uses math/rand. ok is false for an empty slice.
func Random(records []Record, intn func(n int) int) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	if intn == nil {
		intn = rand.Intn
	}
	return records[intn(len(records))], true
}

// RandomFunFact picks a random record and returns it with its fun fact.
// The fact is absent (ok false) when the picked name is not in the table.
func RandomFunFact(records []Record, intn func(n int) int) (Record, string, bool) {
	r, ok := Random(records, intn)
	if !ok {
		return Record{}, "", false
	}
	fact, ok := FunFact(r.Name)
	return r, fact, ok
}
