/*
Package sngraph implements an in-memory directed graph of users, posts
and follow relationships, together with a set of analytic queries.

Data Model

A graph owns a growable sequence of users. Each user owns an
append-only linked list of posts and a growable sequence of the ids
following them:

    Graph:
    +--------+--------+-------+--------+
    | user 1 | user 2 |  ...  | user n |
    +--------+--------+-------+--------+

    User:
    +----+------+----------------------+--------------------------+
    | id | name | posts (linked list)  | followers (id sequence)  |
    +----+------+----------------------+--------------------------+

Follow edges are stored on the followed side only: when F follows U,
F's id is appended to U's follower sequence. The opposite direction,
"who does X follow", is derived by scanning every user's follower
sequence for X's id. The inversion queries (MostActive,
SuggestFollows) rely on this.

Graphs are append-only: users, posts and follow edges are created
during construction, typically by replaying a feed of Records, and
are never updated or removed.

Queries never fail: unknown ids, empty id lists and empty graphs
yield empty or zero-valued results. Graphs are not safe for
concurrent use; callers sharing one must serialize all access.
*/
package sngraph
