package morphkit

// touTranscript is the verbose Morpheus output for "tou=": an article, an
// indeclinable proper name and an enclitic indefinite pronoun.
const touTranscript = "" +
	"<NL>N tou=</NL>\n" +
	":raw tou=\n" +
	"\n" +
	":workw tou=\n" +
	":lem o(\n" +
	":prvb \t\t\t\n" +
	":aug1 \t\t\t\n" +
	":stem o(\t\tarticle\t\n" +
	":suff \t\t\n" +
	":end tou=\t masc/neut gen sg\t\tarticle\n" +
	"\n" +
	":raw tou=\n" +
	"\n" +
	":workw tou=\n" +
	":lem *tou=\n" +
	":prvb \t\t\t\n" +
	":aug1 \t\t\t\n" +
	":stem *tou=\t\tindeclform\t\n" +
	":suff \t\t\n" +
	":end \t\tmasc sg\tindeclform\n" +
	"\n" +
	":raw tou=\n" +
	"\n" +
	":workw tou=\n" +
	":lem tis\n" +
	":prvb \t\t\t\n" +
	":aug1 \t\t\t\n" +
	":stem \t\tindef\t\n" +
	":suff \t\t\n" +
	":end tou=\t masc/neut gen sg enclitic\t\tindef\n"

// legeiTranscript has two endings on one stem.
const legeiTranscript = "" +
	":raw le/gei\n" +
	"\n" +
	":workw le/gei\n" +
	":lem le/gw\n" +
	":prvb \t\t\t\n" +
	":aug1 \t\t\t\n" +
	":stem leg\t \tw_stem\t\n" +
	":suff \t\t\n" +
	":end ei\t pres ind act 3rd sg\t\tw_stem\n" +
	":end ei\t pres ind mp 2nd sg\t\tw_stem\n"
