// Package seed loads fixed datasets into the store. It backs the `seed` CLI
// command, the optional seed-on-start behavior of `serve`, and the integration
// tests, which all expect the same reviews at the same identifiers.
package seed

import (
	"fmt"
	"time"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// Dataset is a complete, self-consistent set of rows. Reviews and comments
// carry explicit identifiers so lookups by id are stable across reseeds.
type Dataset struct {
	Categories []domain.Category
	Users      []domain.User
	Reviews    []domain.Review
	Comments   []domain.Comment
}

// Names of the bundled datasets.
const (
	NameTest        = "test"
	NameDevelopment = "development"
)

// ByName returns the bundled dataset called name.
func ByName(name string) (Dataset, error) {
	switch name {
	case NameTest, "":
		return Test(), nil
	case NameDevelopment, "dev":
		return Development(), nil
	default:
		return Dataset{}, fmt.Errorf("unknown dataset %q (want %q or %q)", name, NameTest, NameDevelopment)
	}
}

// ms builds a UTC timestamp from Unix milliseconds.
func ms(v int64) time.Time { return time.UnixMilli(v).UTC() }

const placeholderImg = domain.DefaultReviewImgURL

// Test is the small dataset the API tests assert against: four categories,
// review 1 is Agricola, and review 1 has no comments.
func Test() Dataset {
	return Dataset{
		Categories: []domain.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: []domain.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Reviews: []domain.Review{
			{ReviewID: 1, Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire", ReviewImgURL: placeholderImg,
				ReviewBody: "Farmyard fun!", Category: "euro game", CreatedAt: ms(1610964020514), Votes: 1},
			{ReviewID: 2, Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9", ReviewImgURL: placeholderImg,
				ReviewBody: "Fiddly fun for all the family", Category: "dexterity", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 3, Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface", ReviewImgURL: placeholderImg,
				ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 4, Title: "Dolphin Pop Fly", Designer: "Leslie Scott", Owner: "mallionaire", ReviewImgURL: placeholderImg,
				ReviewBody: "Flip the dolphin, catch the fish, never stop laughing.", Category: "children's games", CreatedAt: ms(1610010368077), Votes: 3},
			{ReviewID: 5, Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "mallionaire", ReviewImgURL: placeholderImg,
				ReviewBody: "Short rounds and loud accusations around the table.", Category: "social deduction", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 6, Title: "A truly Quacky Game; Quacks of Quedlinburg", Designer: "Wolfgang Warsch", Owner: "mallionaire", ReviewImgURL: placeholderImg,
				ReviewBody: "Ever wish you could be a quack doctor? Push your luck with every ingredient.", Category: "social deduction", CreatedAt: ms(1616595402054), Votes: 10},
		},
		Comments: []domain.Comment{
			{CommentID: 1, Body: "I loved this game too!", Author: "bainesface", ReviewID: 2, Votes: 16, CreatedAt: ms(1511354613389)},
			{CommentID: 2, Body: "My dog loved this game too!", Author: "mallionaire", ReviewID: 3, Votes: 13, CreatedAt: ms(1610964545410)},
			{CommentID: 3, Body: "I didn't know dogs could play games", Author: "philippaclaire9", ReviewID: 3, Votes: 10, CreatedAt: ms(1610964588110)},
			{CommentID: 4, Body: "EPIC board game!", Author: "bainesface", ReviewID: 2, Votes: 16, CreatedAt: ms(1511354163389)},
			{CommentID: 5, Body: "Now this is a story all about how, board games turned my life upside down", Author: "mallionaire", ReviewID: 2, Votes: 13, CreatedAt: ms(1610965445410)},
			{CommentID: 6, Body: "Not sure about dogs, but my cat likes to get involved with board games", Author: "philippaclaire9", ReviewID: 3, Votes: 10, CreatedAt: ms(1616874588110)},
		},
	}
}

// Development is a broader dataset for local runs.
func Development() Dataset {
	return Dataset{
		Categories: []domain.Category{
			{Slug: "strategy", Description: "Strategy-focused board games that prioritise limited-randomness"},
			{Slug: "hidden-roles", Description: "One or more players around the table have a secret, and the rest of you need to figure out who!"},
			{Slug: "dexterity", Description: "Games involving physical skill, something like Gladiators for Board Games!"},
			{Slug: "push-your-luck", Description: "Games that allow you to take a risk, but hold on to your hat!"},
			{Slug: "roll-and-write", Description: "Roll dice and write down the results, simple as that"},
			{Slug: "deck-building", Description: "Games where players construct unique decks of cards"},
			{Slug: "engine-building", Description: "Games where players construct unique points-gaining engines"},
		},
		Users: []domain.User{
			{Username: "tickle122", Name: "Tom Tickle", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png/revision/latest?cb=20180127221953"},
			{Username: "grumpy19", Name: "Paul Grump", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/7/78/Mr-Grumpy-3A.PNG/revision/latest?cb=20170707233013"},
			{Username: "happyamy2016", Name: "Amy Happy", AvatarURL: "https://vignette1.wikia.nocookie.net/mrmen/images/7/7f/Mr_Happy.jpg/revision/latest?cb=20140102171729"},
			{Username: "cooljmessy", Name: "Peter Messy", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/1/1a/MR_MESSY_4A.jpg/revision/latest/scale-to-width-down/250?cb=20170730171002"},
			{Username: "weegembump", Name: "Gemma Bump", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/7/7e/MrMen-Bump.png/revision/latest?cb=20180123225553"},
			{Username: "jessjelly", Name: "Jess Jelly", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/4/4f/MR_JELLY_4A.jpg/revision/latest?cb=20180104121141"},
		},
		Reviews: []domain.Review{
			{ReviewID: 1, Title: "Culture a Love of Agriculture With Agricola", Designer: "Uwe Rosenberg", Owner: "tickle122", ReviewImgURL: placeholderImg,
				ReviewBody: "You could sum up Agricola with the simple phrase 'Farmyard Fun' but the mechanics and game play add so much more than that.", Category: "strategy", CreatedAt: ms(1610964020514), Votes: 1},
			{ReviewID: 2, Title: "JengARRGGGH!", Designer: "Leslie Scott", Owner: "grumpy19", ReviewImgURL: placeholderImg,
				ReviewBody: "Few games are equiped to fill a player with such a defined sense of mild-peril, but a friendly game of Jenga will turn the mustn't-make-it-fall anxiety all the way up to 11!", Category: "dexterity", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 3, Title: "Karma Karma Chameleon", Designer: "Rikki Tahta", Owner: "happyamy2016", ReviewImgURL: placeholderImg,
				ReviewBody: "Try to trick your friends. If you find yourself being dealt the Chamelean card then the aim of the game is simple; blend in.", Category: "hidden-roles", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 4, Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "happyamy2016", ReviewImgURL: placeholderImg,
				ReviewBody: "We couldn't find the werewolf!", Category: "hidden-roles", CreatedAt: ms(1610964101251), Votes: 5},
			{ReviewID: 5, Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "cooljmessy", ReviewImgURL: placeholderImg,
				ReviewBody: "Labore occaecat sunt qui commodo anim anim aliqua adipisicing aliquip fugiat.", Category: "push-your-luck", CreatedAt: ms(1610010368077), Votes: 0},
			{ReviewID: 6, Title: "That's just what an evil person would say!", Designer: "Fiona Lohoar", Owner: "weegembump", ReviewImgURL: placeholderImg,
				ReviewBody: "If you've ever wanted to accuse your siblings, cousins or friends of being part of a plot to murder everyone whilst secretly being part of the plot, this is the game for you.", Category: "hidden-roles", CreatedAt: ms(1610964101251), Votes: 8},
			{ReviewID: 7, Title: "Super Rhino Hero", Designer: "Gamey McGameface", Owner: "jessjelly", ReviewImgURL: placeholderImg,
				ReviewBody: "Consequat velit occaecat voluptate do. Dolor pariatur fugiat sint et proident ex do consequat est.", Category: "dexterity", CreatedAt: ms(1610964101251), Votes: 7},
			{ReviewID: 8, Title: "Dominion", Designer: "Donald X. Vaccarino", Owner: "tickle122", ReviewImgURL: placeholderImg,
				ReviewBody: "The deck-builder that started it all.", Category: "deck-building", CreatedAt: ms(1611311824839), Votes: 12},
		},
		Comments: []domain.Comment{
			{CommentID: 1, Body: "Itaque quisquam est similique et est perspiciatis reprehenderit voluptatem autem.", Author: "tickle122", ReviewID: 2, Votes: -1, CreatedAt: ms(1511354613389)},
			{CommentID: 2, Body: "My dog loved this game too!", Author: "grumpy19", ReviewID: 3, Votes: 13, CreatedAt: ms(1610964545410)},
			{CommentID: 3, Body: "I didn't know dogs could play games", Author: "jessjelly", ReviewID: 3, Votes: 10, CreatedAt: ms(1610964588110)},
			{CommentID: 4, Body: "EPIC board game!", Author: "weegembump", ReviewID: 2, Votes: 16, CreatedAt: ms(1511354163389)},
			{CommentID: 5, Body: "Commodo aliquip sunt commodo elit in esse velit laborum cupidatat anim.", Author: "happyamy2016", ReviewID: 8, Votes: 3, CreatedAt: ms(1616874588110)},
		},
	}
}
